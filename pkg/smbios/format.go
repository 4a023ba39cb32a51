package smbios

import (
	"fmt"
	"strings"
)

// Field 是一个字段的标签及其字符串值，值可以有多行
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

func describeEntry(e Entry) string {
	return e.Header().String() + "\n" + describeFields(e.Type().String(), e.Fields())
}

func describeFields(title string, fields []Field) string {
	var b strings.Builder
	b.WriteString(title)
	for _, f := range fields {
		b.WriteString("\n\t")
		b.WriteString(f.Label)
		b.WriteString(":")
		if strings.Contains(f.Value, "\n") {
			for _, line := range strings.Split(f.Value, "\n") {
				b.WriteString("\n\t\t")
				b.WriteString(line)
			}
			continue
		}
		b.WriteString(" ")
		b.WriteString(f.Value)
	}
	return b.String()
}

func handleString(h uint16) string {
	return fmt.Sprintf("0x%04X", h)
}

// bitsString 按位从低到高，每个置位的标志输出一行
func bitsString(bits uint64, names map[uint]string) string {
	var lines []string
	for bit := uint(0); bit < 64; bit++ {
		if bits&(1<<bit) == 0 {
			continue
		}
		if s, ok := names[bit]; ok {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return "None"
	}
	return strings.Join(lines, "\n")
}

func enumString(v uint8, names map[uint8]string) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("Out Of Spec (0x%02X)", v)
}
