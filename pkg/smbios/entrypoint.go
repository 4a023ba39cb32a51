package smbios

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

const (
	// EntryPoint32Size 是32位入口点的固定大小
	EntryPoint32Size = 0x1F
	// EntryPoint64Size 是64位入口点的固定大小
	EntryPoint64Size = 0x18
	// EntryPointLegacySize 是旧版DMI入口点的固定大小
	EntryPointLegacySize = 0x0F

	// 一些2.1固件错误地声明了0x1E的长度
	entryPoint32MinLength = 0x1E
	// 中间锚点区域在32位入口点中的偏移量
	intermediateOffset = 0x10
)

// EntryPoint 描述了一个已校验的入口点，用来定位结构表
type EntryPoint interface {
	Anchor() AnchorType
	Version() Version
	// TableAddress 是结构表的物理地址
	TableAddress() uint64
	// TableLength 对64位入口点而言只是上限，而不是确切长度
	TableLength() uint32
	// StructureCount 返回声明的结构数，0表示不限
	StructureCount() int
	Describe() string
}

// EntryPoint32 是SMBIOS 2.1+ 的32位入口点 (_SM_)
type EntryPoint32 struct {
	Signature             [4]byte
	Checksum              uint8
	Length                uint8
	MajorVersion          uint8
	MinorVersion          uint8
	MaxStructureSize      uint16
	Revision              uint8
	FormattedArea         [5]uint8
	IntermediateSignature [5]byte
	IntermediateChecksum  uint8
	StructureTableLength  uint16
	StructureTableAddress uint32
	NumberOfStructures    uint16
	BCDRevision           uint8
}

// EntryPoint64 是SMBIOS 3.0+ 的64位入口点 (_SM3_)
type EntryPoint64 struct {
	Signature             [5]byte
	Checksum              uint8
	Length                uint8
	MajorVersion          uint8
	MinorVersion          uint8
	Docrev                uint8
	Revision              uint8
	Reserved              uint8
	StructureTableMaxSize uint32
	StructureTableAddress uint64
}

// EntryPointLegacy 是没有SMBIOS头的旧版DMI入口点 (_DMI_)
type EntryPointLegacy struct {
	Signature             [5]byte
	Checksum              uint8
	StructureTableLength  uint16
	StructureTableAddress uint32
	NumberOfStructures    uint16
	BCDRevision           uint8
}

// Checksum8 返回buf所有字节的8位和
func Checksum8(buf []byte) uint8 {
	var sum uint8
	for _, b := range buf {
		sum += b
	}
	return sum
}

func readEntryPoint(buf []byte, size int, ep interface{}) error {
	if len(buf) < size {
		return errors.Wrapf(ErrInvalidEntryPoint, "入口点太短，需要%d字节，得到%d字节", size, len(buf))
	}
	return binary.Read(bytes.NewReader(buf[:size]), binary.LittleEndian, ep)
}

// checkLength 校验声明的入口点长度及其校验和
func checkLength(buf []byte, length, min int) error {
	if length < min || length > len(buf) {
		return errors.Wrapf(ErrInvalidEntryPoint, "入口点长度%#x无效，缓冲区%#x字节", length, len(buf))
	}
	if sum := Checksum8(buf[:length]); sum != 0 {
		return errors.Wrapf(ErrInvalidEntryPoint, "入口点校验和错误: %#02x", sum)
	}
	return nil
}

// NewEntryPoint32 解析并校验32位入口点
func NewEntryPoint32(buf []byte) (*EntryPoint32, error) {
	var ep EntryPoint32
	if err := readEntryPoint(buf, EntryPoint32Size, &ep); err != nil {
		return nil, err
	}
	if !bytes.Equal(ep.Signature[:], Anchor32) {
		return nil, errors.Wrapf(ErrInvalidEntryPoint, "签名错误: %q", ep.Signature[:])
	}
	if err := checkLength(buf, int(ep.Length), entryPoint32MinLength); err != nil {
		return nil, err
	}
	// 中间锚点不匹配时不能信任结构表指针
	if !bytes.Equal(ep.IntermediateSignature[:], AnchorLegacy) {
		return nil, errors.Wrapf(ErrInvalidEntryPoint, "中间锚点错误: %q", ep.IntermediateSignature[:])
	}
	if sum := Checksum8(buf[intermediateOffset:EntryPoint32Size]); sum != 0 {
		return nil, errors.Wrapf(ErrInvalidEntryPoint, "中间校验和错误: %#02x", sum)
	}
	return &ep, nil
}

// NewEntryPoint64 解析并校验64位入口点
func NewEntryPoint64(buf []byte) (*EntryPoint64, error) {
	var ep EntryPoint64
	if err := readEntryPoint(buf, EntryPoint64Size, &ep); err != nil {
		return nil, err
	}
	if !bytes.Equal(ep.Signature[:], Anchor64) {
		return nil, errors.Wrapf(ErrInvalidEntryPoint, "签名错误: %q", ep.Signature[:])
	}
	if err := checkLength(buf, int(ep.Length), EntryPoint64Size); err != nil {
		return nil, err
	}
	return &ep, nil
}

// NewEntryPointLegacy 解析并校验旧版DMI入口点
func NewEntryPointLegacy(buf []byte) (*EntryPointLegacy, error) {
	var ep EntryPointLegacy
	if err := readEntryPoint(buf, EntryPointLegacySize, &ep); err != nil {
		return nil, err
	}
	if !bytes.Equal(ep.Signature[:], AnchorLegacy) {
		return nil, errors.Wrapf(ErrInvalidEntryPoint, "签名错误: %q", ep.Signature[:])
	}
	if err := checkLength(buf, EntryPointLegacySize, EntryPointLegacySize); err != nil {
		return nil, err
	}
	return &ep, nil
}

// ParseEntryPoint 解析buf开头的入口点
// buf开头没有锚点时，在段落边界上扫描，使用第一个校验通过的候选
// buf开头有锚点但校验失败时直接报错，不再扫描
func ParseEntryPoint(buf []byte) (EntryPoint, error) {
	if DetectAnchor(buf) != AnchorNone {
		return parseEntryPointAt(buf)
	}
	return scanEntryPoint(buf)
}

func parseEntryPointAt(buf []byte) (EntryPoint, error) {
	switch DetectAnchor(buf) {
	case AnchorSMBios32:
		ep, err := NewEntryPoint32(buf)
		if err != nil {
			return nil, err
		}
		return ep, nil
	case AnchorSMBios64:
		ep, err := NewEntryPoint64(buf)
		if err != nil {
			return nil, err
		}
		return ep, nil
	case AnchorSMBiosLegacy:
		ep, err := NewEntryPointLegacy(buf)
		if err != nil {
			return nil, err
		}
		return ep, nil
	}
	return nil, errors.Wrap(ErrInvalidEntryPoint, "未找到锚点")
}

func scanEntryPoint(buf []byte) (EntryPoint, error) {
	// 被拒绝的32位入口点内嵌的中间锚点不能作为旧版入口点使用
	skip := map[int]bool{}
	for _, off := range FindAnchors(buf) {
		if skip[off] {
			continue
		}
		ep, err := parseEntryPointAt(buf[off:])
		if err == nil {
			return ep, nil
		}
		if DetectAnchor(buf[off:]) == AnchorSMBios32 {
			skip[off+intermediateOffset] = true
		}
	}
	return nil, errors.Wrapf(ErrInvalidEntryPoint, "在%d字节中没有校验通过的锚点", len(buf))
}

func (ep *EntryPoint32) Anchor() AnchorType { return AnchorSMBios32 }

func (ep *EntryPoint32) Version() Version {
	return Version{Major: uint16(ep.MajorVersion), Minor: uint16(ep.MinorVersion)}
}

func (ep *EntryPoint32) TableAddress() uint64 { return uint64(ep.StructureTableAddress) }

func (ep *EntryPoint32) TableLength() uint32 { return uint32(ep.StructureTableLength) }

func (ep *EntryPoint32) StructureCount() int { return int(ep.NumberOfStructures) }

// Describe 返回入口点字段的文本描述
func (ep *EntryPoint32) Describe() string {
	return describeFields(ep.Anchor().String()+" Entry Point", []Field{
		{"Anchor", string(ep.Signature[:])},
		{"Checksum", fmt.Sprintf("0x%02X", ep.Checksum)},
		{"Entry Point Length", fmt.Sprintf("0x%02X", ep.Length)},
		{"SMBIOS Version", ep.Version().String()},
		{"Max Structure Size", fmt.Sprintf("%d bytes", ep.MaxStructureSize)},
		{"Entry Point Revision", fmt.Sprintf("%d", ep.Revision)},
		{"Intermediate Anchor", string(ep.IntermediateSignature[:])},
		{"Intermediate Checksum", fmt.Sprintf("0x%02X", ep.IntermediateChecksum)},
		{"Table Length", fmt.Sprintf("%d bytes", ep.StructureTableLength)},
		{"Table Address", fmt.Sprintf("0x%08X", ep.StructureTableAddress)},
		{"Number Of Structures", fmt.Sprintf("%d", ep.NumberOfStructures)},
		{"BCD Revision", bcdString(ep.BCDRevision)},
	})
}

func (ep *EntryPoint64) Anchor() AnchorType { return AnchorSMBios64 }

func (ep *EntryPoint64) Version() Version {
	return Version{Major: uint16(ep.MajorVersion), Minor: uint16(ep.MinorVersion)}
}

func (ep *EntryPoint64) TableAddress() uint64 { return ep.StructureTableAddress }

func (ep *EntryPoint64) TableLength() uint32 { return ep.StructureTableMaxSize }

func (ep *EntryPoint64) StructureCount() int { return 0 }

// Describe 返回入口点字段的文本描述
func (ep *EntryPoint64) Describe() string {
	return describeFields(ep.Anchor().String()+" Entry Point", []Field{
		{"Anchor", string(ep.Signature[:])},
		{"Checksum", fmt.Sprintf("0x%02X", ep.Checksum)},
		{"Entry Point Length", fmt.Sprintf("0x%02X", ep.Length)},
		{"SMBIOS Version", fmt.Sprintf("%d.%d.%d", ep.MajorVersion, ep.MinorVersion, ep.Docrev)},
		{"Entry Point Revision", fmt.Sprintf("%d", ep.Revision)},
		{"Table Maximum Size", fmt.Sprintf("%d bytes", ep.StructureTableMaxSize)},
		{"Table Address", fmt.Sprintf("0x%016X", ep.StructureTableAddress)},
	})
}

func (ep *EntryPointLegacy) Anchor() AnchorType { return AnchorSMBiosLegacy }

// Version 来自BCD修订号，例如0x21表示2.1，0按2.0处理
func (ep *EntryPointLegacy) Version() Version {
	if ep.BCDRevision == 0 {
		return Version{Major: 2, Minor: 0}
	}
	return Version{Major: uint16(ep.BCDRevision >> 4), Minor: uint16(ep.BCDRevision & 0x0F)}
}

func (ep *EntryPointLegacy) TableAddress() uint64 { return uint64(ep.StructureTableAddress) }

func (ep *EntryPointLegacy) TableLength() uint32 { return uint32(ep.StructureTableLength) }

func (ep *EntryPointLegacy) StructureCount() int { return int(ep.NumberOfStructures) }

// Describe 返回入口点字段的文本描述
func (ep *EntryPointLegacy) Describe() string {
	return describeFields(ep.Anchor().String()+" Entry Point", []Field{
		{"Anchor", string(ep.Signature[:])},
		{"Checksum", fmt.Sprintf("0x%02X", ep.Checksum)},
		{"Table Length", fmt.Sprintf("%d bytes", ep.StructureTableLength)},
		{"Table Address", fmt.Sprintf("0x%08X", ep.StructureTableAddress)},
		{"Number Of Structures", fmt.Sprintf("%d", ep.NumberOfStructures)},
		{"BCD Revision", bcdString(ep.BCDRevision)},
	})
}

func bcdString(b uint8) string {
	if b == 0 {
		return "Not Specified"
	}
	return fmt.Sprintf("%d.%d", b>>4, b&0x0F)
}
