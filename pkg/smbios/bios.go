package smbios

import (
	"fmt"
	"strings"
)

const (
	// BIOSCharacteristicsNotSupported 是特征字段缺失时的值(第3位)
	BIOSCharacteristicsNotSupported uint64 = 1 << 3
	// BIOSReleaseNotSupported 表示BIOS或EC版本号不可用
	BIOSReleaseNotSupported = 0xFF
	// BIOSROMSizeExtended 表示ROM大小需要看扩展ROM大小字段
	BIOSROMSizeExtended = 0xFF
)

var (
	biosTier20 = tier{since: Version{2, 0}, offset: 0x04, length: 0x12}
	biosTier24 = tier{since: Version{2, 4}, offset: 0x12, length: 0x18}
	biosTier31 = tier{since: Version{3, 1}, offset: 0x18, length: 0x1A}
)

type biosInformation20 struct {
	Vendor          uint8
	BIOSVersion     uint8
	StartingSegment uint16
	ReleaseDate     uint8
	ROMSize         uint8
	Characteristics uint64
}

type biosInformation24 struct {
	CharacteristicsExt1 uint8
	CharacteristicsExt2 uint8
	BIOSMajorRelease    uint8
	BIOSMinorRelease    uint8
	ECMajorRelease      uint8
	ECMinorRelease      uint8
}

type biosInformation31 struct {
	ExtendedROMSize uint16
}

var biosCharacteristicNames = map[uint]string{
	2:  "Unknown",
	3:  "BIOS characteristics not supported",
	4:  "ISA is supported",
	5:  "MCA is supported",
	6:  "EISA is supported",
	7:  "PCI is supported",
	8:  "PC Card (PCMCIA) is supported",
	9:  "PNP is supported",
	10: "APM is supported",
	11: "BIOS is upgradeable",
	12: "BIOS shadowing is allowed",
	13: "VLB is supported",
	14: "ESCD support is available",
	15: "Boot from CD is supported",
	16: "Selectable boot is supported",
	17: "BIOS ROM is socketed",
	18: "Boot from PC Card (PCMCIA) is supported",
	19: "EDD is supported",
	20: "Japanese floppy for NEC 9800 1.2 MB is supported (int 13h)",
	21: "Japanese floppy for Toshiba 1.2 MB is supported (int 13h)",
	22: "5.25\"/360 kB floppy services are supported (int 13h)",
	23: "5.25\"/1.2 MB floppy services are supported (int 13h)",
	24: "3.5\"/720 kB floppy services are supported (int 13h)",
	25: "3.5\"/2.88 MB floppy services are supported (int 13h)",
	26: "Print screen service is supported (int 5h)",
	27: "8042 keyboard services are supported (int 9h)",
	28: "Serial services are supported (int 14h)",
	29: "Printer services are supported (int 17h)",
	30: "CGA/mono video services are supported (int 10h)",
	31: "NEC PC-98",
}

var biosCharacteristicExt1Names = map[uint]string{
	0: "ACPI is supported",
	1: "USB legacy is supported",
	2: "AGP is supported",
	3: "I2O boot is supported",
	4: "LS-120 boot is supported",
	5: "ATAPI Zip drive boot is supported",
	6: "IEEE 1394 boot is supported",
	7: "Smart battery is supported",
}

var biosCharacteristicExt2Names = map[uint]string{
	0: "BIOS boot specification is supported",
	1: "Function key-initiated network boot is supported",
	2: "Targeted content distribution is supported",
	3: "UEFI is supported",
	4: "System is a virtual machine",
	5: "Manufacturing mode is supported",
	6: "Manufacturing mode is enabled",
}

// BIOSInformation 是类型0结构
type BIOSInformation struct {
	entry

	v20 *biosInformation20
	v24 *biosInformation24
	v31 *biosInformation31
}

// NewBIOSInformation 解码类型0结构
func NewBIOSInformation(h Header, v Version) (*BIOSInformation, error) {
	e, err := newEntry(h, v, TypeBIOSInformation)
	if err != nil {
		return nil, err
	}
	b := &BIOSInformation{entry: e}

	var v20 biosInformation20
	if b.overlay(biosTier20, &v20) {
		b.v20 = &v20
	}
	var v24 biosInformation24
	if b.overlay(biosTier24, &v24) {
		b.v24 = &v24
	}
	var v31 biosInformation31
	if b.overlay(biosTier31, &v31) {
		b.v31 = &v31
	}
	return b, nil
}

// Vendor 返回BIOS厂商
func (b *BIOSInformation) Vendor() string {
	if b.v20 == nil {
		return StringNotSpecified
	}
	return b.str(b.v20.Vendor)
}

// BIOSVersion 返回BIOS版本字符串
func (b *BIOSInformation) BIOSVersion() string {
	if b.v20 == nil {
		return StringNotSpecified
	}
	return b.str(b.v20.BIOSVersion)
}

// ReleaseDate 返回BIOS发布日期
func (b *BIOSInformation) ReleaseDate() string {
	if b.v20 == nil {
		return StringNotSpecified
	}
	return b.str(b.v20.ReleaseDate)
}

// StartingSegment 返回BIOS起始地址段
func (b *BIOSInformation) StartingSegment() uint16 {
	if b.v20 == nil {
		return 0
	}
	return b.v20.StartingSegment
}

func (b *BIOSInformation) AddressString() string {
	if b.v20 == nil {
		return "Unknown"
	}
	return fmt.Sprintf("0x%04X0", b.v20.StartingSegment)
}

// RuntimeSize 返回起始段到1MB边界之间的字节数
func (b *BIOSInformation) RuntimeSize() uint32 {
	if b.v20 == nil {
		return 0
	}
	return (0x10000 - uint32(b.v20.StartingSegment)) << 4
}

func (b *BIOSInformation) RuntimeSizeString() string {
	if b.v20 == nil {
		return "Unknown"
	}
	size := b.RuntimeSize()
	if size%1024 == 0 {
		return fmt.Sprintf("%d kB", size>>10)
	}
	return fmt.Sprintf("%d bytes", size)
}

// RawROMSize 返回ROM大小字段的原始值
func (b *BIOSInformation) RawROMSize() uint8 {
	if b.v20 == nil {
		return 0
	}
	return b.v20.ROMSize
}

// ROMSize 返回 (0x10000 - ROM大小字段) << 4 字节
func (b *BIOSInformation) ROMSize() uint32 {
	if b.v20 == nil {
		return 0
	}
	return (0x10000 - uint32(b.v20.ROMSize)) << 4
}

func (b *BIOSInformation) ROMSizeString() string {
	if b.v20 == nil {
		return "Unknown"
	}
	if b.v20.ROMSize == BIOSROMSizeExtended && b.v31 != nil {
		return b.ExtendedROMSizeString()
	}
	return fmt.Sprintf("%d bytes", b.ROMSize())
}

// ExtendedROMSize 返回3.1+的扩展ROM大小字段
func (b *BIOSInformation) ExtendedROMSize() uint16 {
	if b.v31 == nil {
		return 0
	}
	return b.v31.ExtendedROMSize
}

// ExtendedROMSizeString 位15:14是单位(00 MB，01 GB)，位13:0是大小
func (b *BIOSInformation) ExtendedROMSizeString() string {
	if b.v31 == nil {
		return "Unknown"
	}
	size := b.v31.ExtendedROMSize & 0x3FFF
	switch b.v31.ExtendedROMSize >> 14 {
	case 0:
		return fmt.Sprintf("%d MB", size)
	case 1:
		return fmt.Sprintf("%d GB", size)
	}
	return fmt.Sprintf("Reserved (0x%04X)", b.v31.ExtendedROMSize)
}

// Characteristics 返回BIOS特征位图
func (b *BIOSInformation) Characteristics() uint64 {
	if b.v20 == nil {
		return BIOSCharacteristicsNotSupported
	}
	return b.v20.Characteristics
}

func (b *BIOSInformation) CharacteristicsString() string {
	c := b.Characteristics()
	if c&BIOSCharacteristicsNotSupported != 0 {
		return biosCharacteristicNames[3]
	}
	// 位32:63保留给BIOS厂商和系统厂商
	return bitsString(c&0xFFFFFFFF, biosCharacteristicNames)
}

// CharacteristicsExt1 返回2.4+的扩展特征字节1
func (b *BIOSInformation) CharacteristicsExt1() uint8 {
	if b.v24 == nil {
		return 0
	}
	return b.v24.CharacteristicsExt1
}

func (b *BIOSInformation) CharacteristicsExt1String() string {
	return bitsString(uint64(b.CharacteristicsExt1()), biosCharacteristicExt1Names)
}

// CharacteristicsExt2 返回2.4+的扩展特征字节2
func (b *BIOSInformation) CharacteristicsExt2() uint8 {
	if b.v24 == nil {
		return 0
	}
	return b.v24.CharacteristicsExt2
}

func (b *BIOSInformation) CharacteristicsExt2String() string {
	return bitsString(uint64(b.CharacteristicsExt2()), biosCharacteristicExt2Names)
}

// BIOSRelease 返回系统BIOS的主次版本号
func (b *BIOSInformation) BIOSRelease() (major, minor uint8) {
	if b.v24 == nil {
		return BIOSReleaseNotSupported, BIOSReleaseNotSupported
	}
	return b.v24.BIOSMajorRelease, b.v24.BIOSMinorRelease
}

func (b *BIOSInformation) BIOSRevisionString() string {
	return releaseString(b.BIOSRelease())
}

// ECRelease 返回嵌入式控制器固件的主次版本号
func (b *BIOSInformation) ECRelease() (major, minor uint8) {
	if b.v24 == nil {
		return BIOSReleaseNotSupported, BIOSReleaseNotSupported
	}
	return b.v24.ECMajorRelease, b.v24.ECMinorRelease
}

func (b *BIOSInformation) FirmwareRevisionString() string {
	return releaseString(b.ECRelease())
}

func releaseString(major, minor uint8) string {
	if major == BIOSReleaseNotSupported && minor == BIOSReleaseNotSupported {
		return "Not upgradeable"
	}
	return fmt.Sprintf("%d.%d", major, minor)
}

func (b *BIOSInformation) Fields() []Field {
	fields := []Field{
		{"Vendor", b.Vendor()},
		{"Version", b.BIOSVersion()},
		{"Release Date", b.ReleaseDate()},
		{"Address", b.AddressString()},
		{"Runtime Size", b.RuntimeSizeString()},
		{"ROM Size", b.ROMSizeString()},
		{"Characteristics", b.CharacteristicsString()},
	}
	if b.v24 != nil {
		var ext []string
		if b.v24.CharacteristicsExt1 != 0 {
			ext = append(ext, b.CharacteristicsExt1String())
		}
		if b.v24.CharacteristicsExt2 != 0 {
			ext = append(ext, b.CharacteristicsExt2String())
		}
		if len(ext) > 0 {
			fields = append(fields, Field{"Characteristics Extension", strings.Join(ext, "\n")})
		}
		fields = append(fields,
			Field{"BIOS Revision", b.BIOSRevisionString()},
			Field{"Firmware Revision", b.FirmwareRevisionString()},
		)
	}
	return fields
}

func (b *BIOSInformation) Describe() string {
	return describeEntry(b)
}
