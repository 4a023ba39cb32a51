package smbios

import (
	"bytes"
	"fmt"
)

// AnchorType 表示入口点锚点的种类
type AnchorType int

const (
	AnchorNone AnchorType = iota
	AnchorSMBios32
	AnchorSMBios64
	AnchorSMBiosLegacy
)

const (
	// AnchorAlignment 锚点在物理内存中按16字节段落对齐
	AnchorAlignment = 16
)

// 入口点锚点字节序列
var (
	Anchor32     = []byte("_SM_")
	Anchor64     = []byte("_SM3_")
	AnchorLegacy = []byte("_DMI_")
)

var anchorTypeNames = map[AnchorType]string{
	AnchorNone:         "No Header",
	AnchorSMBios32:     "SMBIOS 32-bit",
	AnchorSMBios64:     "SMBIOS 64-bit",
	AnchorSMBiosLegacy: "Legacy DMI",
}

func (a AnchorType) String() string {
	if s, ok := anchorTypeNames[a]; ok {
		return s
	}
	return fmt.Sprintf("未知锚点 (%d)", int(a))
}

// DetectAnchor 按32位、64位、旧版的顺序比较buf开头的锚点
func DetectAnchor(buf []byte) AnchorType {
	switch {
	case bytes.HasPrefix(buf, Anchor32):
		return AnchorSMBios32
	case bytes.HasPrefix(buf, Anchor64):
		return AnchorSMBios64
	case bytes.HasPrefix(buf, AnchorLegacy):
		return AnchorSMBiosLegacy
	}
	return AnchorNone
}

// FindAnchors 在段落边界上扫描buf，返回所有锚点的偏移量
func FindAnchors(buf []byte) []int {
	var offsets []int
	for off := 0; off < len(buf); off += AnchorAlignment {
		if DetectAnchor(buf[off:]) != AnchorNone {
			offsets = append(offsets, off)
		}
	}
	return offsets
}
