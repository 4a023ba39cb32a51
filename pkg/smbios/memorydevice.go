package smbios

import (
	"fmt"
)

// 字段缺失或特殊含义的值
const (
	ErrorHandleNotProvided = 0xFFFE
	ErrorHandleNoError     = 0xFFFF

	WidthUnknown = 0xFFFF

	DeviceSizeNotInstalled = 0x0000
	DeviceSizeUnknown      = 0xFFFF
	// DeviceSizeExtended 表示大小在扩展大小字段中
	DeviceSizeExtended = 0x7FFF
	// DeviceSizeKilobytes 置位时低15位以kB为单位
	DeviceSizeKilobytes = 0x8000

	DeviceSetNone    = 0x00
	DeviceSetUnknown = 0xFF

	SpeedUnknown  = 0x0000
	SpeedReserved = 0xFFFF
)

// MemoryFormFactor 是内存设备的外形
type MemoryFormFactor uint8

// MemoryDeviceType 是内存设备的类型
type MemoryDeviceType uint8

const (
	FormFactorOutOfSpec MemoryFormFactor = 0x00
	DeviceTypeOutOfSpec MemoryDeviceType = 0x00
)

var (
	memoryDeviceTier21        = tier{since: Version{2, 1}, offset: 0x04, length: 0x15}
	memoryDeviceTier23        = tier{since: Version{2, 3}, offset: 0x15, length: 0x17}
	memoryDeviceTier23Strings = tier{since: Version{2, 3}, offset: 0x17, length: 0x1B}
	memoryDeviceTier26        = tier{since: Version{2, 6}, offset: 0x1B, length: 0x1C}
	memoryDeviceTier27        = tier{since: Version{2, 7}, offset: 0x1C, length: 0x22}
	memoryDeviceTier28        = tier{since: Version{2, 8}, offset: 0x22, length: 0x28}
)

type memoryDevice21 struct {
	PhysicalMemoryArrayHandle    uint16
	MemoryErrorInformationHandle uint16
	TotalWidth                   uint16
	DataWidth                    uint16
	Size                         uint16
	FormFactor                   uint8
	DeviceSet                    uint8
	DeviceLocator                uint8
	BankLocator                  uint8
	MemoryType                   uint8
	TypeDetail                   uint16
}

type memoryDevice23 struct {
	Speed uint16
}

// 2.3的字符串索引在速率之后，较短的结构可能只有速率
type memoryDevice23Strings struct {
	Manufacturer uint8
	SerialNumber uint8
	AssetTag     uint8
	PartNumber   uint8
}

type memoryDevice26 struct {
	Attributes uint8
}

type memoryDevice27 struct {
	ExtendedSize          uint32
	ConfiguredMemorySpeed uint16
}

type memoryDevice28 struct {
	MinimumVoltage    uint16
	MaximumVoltage    uint16
	ConfiguredVoltage uint16
}

var memoryFormFactorNames = map[uint8]string{
	0x00: "Out Of Spec",
	0x01: "Other",
	0x02: "Unknown",
	0x03: "SIMM",
	0x04: "SIP",
	0x05: "Chip",
	0x06: "DIP",
	0x07: "ZIP",
	0x08: "Proprietary Card",
	0x09: "DIMM",
	0x0A: "TSOP",
	0x0B: "Row Of Chips",
	0x0C: "RIMM",
	0x0D: "SODIMM",
	0x0E: "SRIMM",
	0x0F: "FB-DIMM",
	0x10: "Die",
}

var memoryDeviceTypeNames = map[uint8]string{
	0x00: "Out Of Spec",
	0x01: "Other",
	0x02: "Unknown",
	0x03: "DRAM",
	0x04: "EDRAM",
	0x05: "VRAM",
	0x06: "SRAM",
	0x07: "RAM",
	0x08: "ROM",
	0x09: "Flash",
	0x0A: "EEPROM",
	0x0B: "FEPROM",
	0x0C: "EPROM",
	0x0D: "CDRAM",
	0x0E: "3DRAM",
	0x0F: "SDRAM",
	0x10: "SGRAM",
	0x11: "RDRAM",
	0x12: "DDR",
	0x13: "DDR2",
	0x14: "DDR2 FB-DIMM",
	0x15: "Reserved",
	0x16: "Reserved",
	0x17: "Reserved",
	0x18: "DDR3",
	0x19: "FBD2",
	0x1A: "DDR4",
	0x1B: "LPDDR",
	0x1C: "LPDDR2",
	0x1D: "LPDDR3",
	0x1E: "LPDDR4",
	0x1F: "Logical non-volatile device",
	0x20: "HBM",
	0x21: "HBM2",
	0x22: "DDR5",
	0x23: "LPDDR5",
}

var memoryTypeDetailNames = map[uint]string{
	1:  "Other",
	2:  "Unknown",
	3:  "Fast-paged",
	4:  "Static Column",
	5:  "Pseudo-static",
	6:  "RAMBus",
	7:  "Synchronous",
	8:  "CMOS",
	9:  "EDO",
	10: "Window DRAM",
	11: "Cache DRAM",
	12: "Non-Volatile",
	13: "Registered (Buffered)",
	14: "Unbuffered (Unregistered)",
	15: "LRDIMM",
}

func (f MemoryFormFactor) String() string {
	return enumString(uint8(f), memoryFormFactorNames)
}

func (t MemoryDeviceType) String() string {
	return enumString(uint8(t), memoryDeviceTypeNames)
}

// MemoryDevice 是类型17结构
type MemoryDevice struct {
	entry

	v21  *memoryDevice21
	v23  *memoryDevice23
	v23s *memoryDevice23Strings
	v26  *memoryDevice26
	v27  *memoryDevice27
	v28  *memoryDevice28
}

// NewMemoryDevice 解码类型17结构
func NewMemoryDevice(h Header, v Version) (*MemoryDevice, error) {
	e, err := newEntry(h, v, TypeMemoryDevice)
	if err != nil {
		return nil, err
	}
	m := &MemoryDevice{entry: e}

	var v21 memoryDevice21
	if m.overlay(memoryDeviceTier21, &v21) {
		m.v21 = &v21
	}
	var v23 memoryDevice23
	if m.overlay(memoryDeviceTier23, &v23) {
		m.v23 = &v23
	}
	var v23s memoryDevice23Strings
	if m.overlay(memoryDeviceTier23Strings, &v23s) {
		m.v23s = &v23s
	}
	var v26 memoryDevice26
	if m.overlay(memoryDeviceTier26, &v26) {
		m.v26 = &v26
	}
	var v27 memoryDevice27
	if m.overlay(memoryDeviceTier27, &v27) {
		m.v27 = &v27
	}
	var v28 memoryDevice28
	if m.overlay(memoryDeviceTier28, &v28) {
		m.v28 = &v28
	}
	return m, nil
}

// ArrayHandle 返回所属物理内存阵列(类型16)的句柄
func (m *MemoryDevice) ArrayHandle() uint16 {
	if m.v21 == nil {
		return 0
	}
	return m.v21.PhysicalMemoryArrayHandle
}

func (m *MemoryDevice) ArrayHandleString() string {
	return handleString(m.ArrayHandle())
}

// ErrorHandle 返回内存错误信息结构的句柄
func (m *MemoryDevice) ErrorHandle() uint16 {
	if m.v21 == nil {
		return ErrorHandleNotProvided
	}
	return m.v21.MemoryErrorInformationHandle
}

func (m *MemoryDevice) ErrorHandleString() string {
	switch h := m.ErrorHandle(); h {
	case ErrorHandleNotProvided:
		return "Not Provided"
	case ErrorHandleNoError:
		return "No Error"
	default:
		return handleString(h)
	}
}

// TotalWidth 返回包括纠错位在内的总位宽
func (m *MemoryDevice) TotalWidth() uint16 {
	if m.v21 == nil {
		return 0
	}
	return m.v21.TotalWidth
}

func (m *MemoryDevice) TotalWidthString() string {
	return widthString(m.TotalWidth())
}

// DataWidth 返回数据位宽
func (m *MemoryDevice) DataWidth() uint16 {
	if m.v21 == nil {
		return 0
	}
	return m.v21.DataWidth
}

func (m *MemoryDevice) DataWidthString() string {
	return widthString(m.DataWidth())
}

func widthString(w uint16) string {
	if w == 0 || w == WidthUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("%d bits", w)
}

// DeviceSize 返回大小字段的原始值
func (m *MemoryDevice) DeviceSize() uint16 {
	if m.v21 == nil {
		return DeviceSizeUnknown
	}
	return m.v21.Size
}

// ExtendedSize 返回2.7+的扩展大小，单位MB
func (m *MemoryDevice) ExtendedSize() uint32 {
	if m.v27 == nil {
		return 0
	}
	return m.v27.ExtendedSize & 0x7FFFFFFF
}

func (m *MemoryDevice) DeviceSizeString() string {
	size := m.DeviceSize()
	switch {
	case size == DeviceSizeNotInstalled:
		return "No Module Installed"
	case size == DeviceSizeUnknown:
		return "Unknown"
	case size == DeviceSizeExtended && m.v27 != nil:
		return fmt.Sprintf("%d MB", m.ExtendedSize())
	case size&DeviceSizeKilobytes != 0:
		return fmt.Sprintf("%d kB", size&^DeviceSizeKilobytes)
	}
	return fmt.Sprintf("%d MB", size)
}

// DeviceSizeBytes 返回以字节计的容量，未安装或未知时为0
func (m *MemoryDevice) DeviceSizeBytes() uint64 {
	size := m.DeviceSize()
	switch {
	case size == DeviceSizeNotInstalled || size == DeviceSizeUnknown:
		return 0
	case size == DeviceSizeExtended && m.v27 != nil:
		return uint64(m.ExtendedSize()) << 20
	case size&DeviceSizeKilobytes != 0:
		return uint64(size&^DeviceSizeKilobytes) << 10
	}
	return uint64(size) << 20
}

func (m *MemoryDevice) FormFactor() MemoryFormFactor {
	if m.v21 == nil {
		return FormFactorOutOfSpec
	}
	return MemoryFormFactor(m.v21.FormFactor)
}

// DeviceSet 标识必须成组安装的设备，0表示不属于任何组
func (m *MemoryDevice) DeviceSet() uint8 {
	if m.v21 == nil {
		return DeviceSetUnknown
	}
	return m.v21.DeviceSet
}

func (m *MemoryDevice) DeviceSetString() string {
	switch s := m.DeviceSet(); s {
	case DeviceSetNone:
		return "None"
	case DeviceSetUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("%d", s)
	}
}

func (m *MemoryDevice) DeviceLocator() string {
	if m.v21 == nil {
		return StringNotSpecified
	}
	return m.str(m.v21.DeviceLocator)
}

func (m *MemoryDevice) BankLocator() string {
	if m.v21 == nil {
		return StringNotSpecified
	}
	return m.str(m.v21.BankLocator)
}

func (m *MemoryDevice) DeviceType() MemoryDeviceType {
	if m.v21 == nil {
		return DeviceTypeOutOfSpec
	}
	return MemoryDeviceType(m.v21.MemoryType)
}

// TypeDetail 返回类型细节位图
func (m *MemoryDevice) TypeDetail() uint16 {
	if m.v21 == nil {
		return 0
	}
	return m.v21.TypeDetail
}

func (m *MemoryDevice) TypeDetailString() string {
	return bitsString(uint64(m.TypeDetail()), memoryTypeDetailNames)
}

// Speed 返回最大速率，单位MT/s
func (m *MemoryDevice) Speed() uint16 {
	if m.v23 == nil {
		return SpeedUnknown
	}
	return m.v23.Speed
}

func (m *MemoryDevice) SpeedString() string {
	return speedString(m.Speed())
}

func speedString(s uint16) string {
	switch s {
	case SpeedUnknown:
		return "Unknown"
	case SpeedReserved:
		return "Reserved"
	}
	return fmt.Sprintf("%d MT/s", s)
}

func (m *MemoryDevice) Manufacturer() string {
	if m.v23s == nil {
		return StringNotSpecified
	}
	return m.str(m.v23s.Manufacturer)
}

func (m *MemoryDevice) SerialNumber() string {
	if m.v23s == nil {
		return StringNotSpecified
	}
	return m.str(m.v23s.SerialNumber)
}

func (m *MemoryDevice) AssetTag() string {
	if m.v23s == nil {
		return StringNotSpecified
	}
	return m.str(m.v23s.AssetTag)
}

func (m *MemoryDevice) PartNumber() string {
	if m.v23s == nil {
		return StringNotSpecified
	}
	return m.str(m.v23s.PartNumber)
}

// Rank 返回属性字节的低4位，0表示未知
func (m *MemoryDevice) Rank() uint8 {
	if m.v26 == nil {
		return 0
	}
	return m.v26.Attributes & 0x0F
}

func (m *MemoryDevice) RankString() string {
	if r := m.Rank(); r != 0 {
		return fmt.Sprintf("%d", r)
	}
	return "Unknown"
}

// ConfiguredSpeed 返回配置的速率，单位MT/s
func (m *MemoryDevice) ConfiguredSpeed() uint16 {
	if m.v27 == nil {
		return SpeedUnknown
	}
	return m.v27.ConfiguredMemorySpeed
}

func (m *MemoryDevice) ConfiguredSpeedString() string {
	return speedString(m.ConfiguredSpeed())
}

// Voltages 返回最小、最大和配置电压，单位mV，0表示未知
func (m *MemoryDevice) Voltages() (minimum, maximum, configured uint16) {
	if m.v28 == nil {
		return 0, 0, 0
	}
	return m.v28.MinimumVoltage, m.v28.MaximumVoltage, m.v28.ConfiguredVoltage
}

func voltageString(mv uint16) string {
	if mv == 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%g V", float64(mv)/1000)
}

func (m *MemoryDevice) Fields() []Field {
	fields := []Field{
		{"Array Handle", m.ArrayHandleString()},
		{"Error Information Handle", m.ErrorHandleString()},
		{"Total Width", m.TotalWidthString()},
		{"Data Width", m.DataWidthString()},
		{"Size", m.DeviceSizeString()},
		{"Form Factor", m.FormFactor().String()},
		{"Set", m.DeviceSetString()},
		{"Locator", m.DeviceLocator()},
		{"Bank Locator", m.BankLocator()},
		{"Type", m.DeviceType().String()},
		{"Type Detail", m.TypeDetailString()},
	}
	if m.v23 != nil {
		fields = append(fields, Field{"Speed", m.SpeedString()})
	}
	if m.v23s != nil {
		fields = append(fields,
			Field{"Manufacturer", m.Manufacturer()},
			Field{"Serial Number", m.SerialNumber()},
			Field{"Asset Tag", m.AssetTag()},
			Field{"Part Number", m.PartNumber()},
		)
	}
	if m.v26 != nil {
		fields = append(fields, Field{"Rank", m.RankString()})
	}
	if m.v27 != nil {
		fields = append(fields, Field{"Configured Memory Speed", m.ConfiguredSpeedString()})
	}
	if m.v28 != nil {
		minimum, maximum, configured := m.Voltages()
		fields = append(fields,
			Field{"Minimum Voltage", voltageString(minimum)},
			Field{"Maximum Voltage", voltageString(maximum)},
			Field{"Configured Voltage", voltageString(configured)},
		)
	}
	return fields
}

func (m *MemoryDevice) Describe() string {
	return describeEntry(m)
}
