package smbios

import (
	"fmt"
	"strings"
)

// Unrecognized 是没有专门解码器的结构，只保留原始字节和字符串
type Unrecognized struct {
	entry
}

// NewUnrecognized 包装任意类型的结构
func NewUnrecognized(h Header, v Version) *Unrecognized {
	return &Unrecognized{entry: entry{
		header:  h,
		version: v,
		strings: h.Strings(),
	}}
}

func (u *Unrecognized) Fields() []Field {
	formatted := u.header.Formatted()
	var lines []string
	for i := 0; i < len(formatted); i += 16 {
		end := i + 16
		if end > len(formatted) {
			end = len(formatted)
		}
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("% X", formatted[i:end])))
	}
	fields := []Field{{"Header and Data", strings.Join(lines, "\n")}}
	if len(u.strings) > 0 {
		fields = append(fields, Field{"Strings", strings.Join(u.strings, "\n")})
	}
	return fields
}

func (u *Unrecognized) Describe() string {
	return describeEntry(u)
}
