package smbios

import (
	"bytes"
	"strings"

	"github.com/google/uuid"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/guid"
)

// WakeUpType 表示系统上电的原因
type WakeUpType uint8

const (
	WakeUpTypeUnknown WakeUpType = 0x02
)

var (
	systemTier20 = tier{since: Version{2, 0}, offset: 0x04, length: 0x08}
	systemTier21 = tier{since: Version{2, 1}, offset: 0x08, length: 0x19}
	systemTier24 = tier{since: Version{2, 4}, offset: 0x19, length: 0x1B}

	// 从2.6起UUID的前三个字段按小端存储
	uuidLittleEndianSince = Version{2, 6}
)

type systemInformation20 struct {
	Manufacturer uint8
	ProductName  uint8
	Version      uint8
	SerialNumber uint8
}

type systemInformation21 struct {
	UUID       [16]byte
	WakeUpType uint8
}

type systemInformation24 struct {
	SKUNumber uint8
	Family    uint8
}

var wakeUpTypeNames = map[uint8]string{
	0x00: "Reserved",
	0x01: "Other",
	0x02: "Unknown",
	0x03: "APM Timer",
	0x04: "Modem Ring",
	0x05: "LAN Remote",
	0x06: "Power Switch",
	0x07: "PCI PME#",
	0x08: "AC Power Restored",
}

func (w WakeUpType) String() string {
	return enumString(uint8(w), wakeUpTypeNames)
}

// SystemInformation 是类型1结构
type SystemInformation struct {
	entry

	v20 *systemInformation20
	v21 *systemInformation21
	v24 *systemInformation24
}

// NewSystemInformation 解码类型1结构
func NewSystemInformation(h Header, v Version) (*SystemInformation, error) {
	e, err := newEntry(h, v, TypeSystemInformation)
	if err != nil {
		return nil, err
	}
	s := &SystemInformation{entry: e}

	var v20 systemInformation20
	if s.overlay(systemTier20, &v20) {
		s.v20 = &v20
	}
	var v21 systemInformation21
	if s.overlay(systemTier21, &v21) {
		s.v21 = &v21
	}
	var v24 systemInformation24
	if s.overlay(systemTier24, &v24) {
		s.v24 = &v24
	}
	return s, nil
}

func (s *SystemInformation) Manufacturer() string {
	if s.v20 == nil {
		return StringNotSpecified
	}
	return s.str(s.v20.Manufacturer)
}

func (s *SystemInformation) ProductName() string {
	if s.v20 == nil {
		return StringNotSpecified
	}
	return s.str(s.v20.ProductName)
}

// ProductVersion 返回产品版本字符串
func (s *SystemInformation) ProductVersion() string {
	if s.v20 == nil {
		return StringNotSpecified
	}
	return s.str(s.v20.Version)
}

func (s *SystemInformation) SerialNumber() string {
	if s.v20 == nil {
		return StringNotSpecified
	}
	return s.str(s.v20.SerialNumber)
}

// UUID 返回规范字节序的系统UUID，字段缺失时ok为false
func (s *SystemInformation) UUID() (id uuid.UUID, ok bool) {
	if s.v21 == nil {
		return uuid.Nil, false
	}
	if s.version.AtLeast(uuidLittleEndianSince) {
		return guid.GUID(s.v21.UUID).UUID(), true
	}
	return uuid.UUID(s.v21.UUID), true
}

func (s *SystemInformation) UUIDString() string {
	if s.v21 == nil {
		return "Not Present"
	}
	raw := s.v21.UUID[:]
	switch {
	case bytes.Equal(raw, bytes.Repeat([]byte{0xFF}, 16)):
		return "Not Settable"
	case bytes.Equal(raw, make([]byte, 16)):
		return "Not Present"
	}
	id, _ := s.UUID()
	return strings.ToUpper(id.String())
}

func (s *SystemInformation) WakeUpType() WakeUpType {
	if s.v21 == nil {
		return WakeUpTypeUnknown
	}
	return WakeUpType(s.v21.WakeUpType)
}

func (s *SystemInformation) SKUNumber() string {
	if s.v24 == nil {
		return StringNotSpecified
	}
	return s.str(s.v24.SKUNumber)
}

func (s *SystemInformation) Family() string {
	if s.v24 == nil {
		return StringNotSpecified
	}
	return s.str(s.v24.Family)
}

func (s *SystemInformation) Fields() []Field {
	fields := []Field{
		{"Manufacturer", s.Manufacturer()},
		{"Product Name", s.ProductName()},
		{"Version", s.ProductVersion()},
		{"Serial Number", s.SerialNumber()},
	}
	if s.v21 != nil {
		fields = append(fields,
			Field{"UUID", s.UUIDString()},
			Field{"Wake-up Type", s.WakeUpType().String()},
		)
	}
	if s.v24 != nil {
		fields = append(fields,
			Field{"SKU Number", s.SKUNumber()},
			Field{"Family", s.Family()},
		)
	}
	return fields
}

func (s *SystemInformation) Describe() string {
	return describeEntry(s)
}
