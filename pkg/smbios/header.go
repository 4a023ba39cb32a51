package smbios

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	// HeaderSize 是每个结构开头的 type、length、handle 三元组的大小
	HeaderSize = 4
)

// StructureType 表示SMBIOS结构的类型字节
type StructureType uint8

// SMBIOS 3.x 定义的结构类型
const (
	TypeBIOSInformation                   StructureType = 0
	TypeSystemInformation                 StructureType = 1
	TypeBaseboardInformation              StructureType = 2
	TypeChassisInformation                StructureType = 3
	TypeProcessorInformation              StructureType = 4
	TypeMemoryControllerInformation       StructureType = 5
	TypeMemoryModuleInformation           StructureType = 6
	TypeCacheInformation                  StructureType = 7
	TypePortConnectorInformation          StructureType = 8
	TypeSystemSlots                       StructureType = 9
	TypeOnBoardDevicesInformation         StructureType = 10
	TypeOEMStrings                        StructureType = 11
	TypeSystemConfigurationOptions        StructureType = 12
	TypeBIOSLanguageInformation           StructureType = 13
	TypeGroupAssociations                 StructureType = 14
	TypeSystemEventLog                    StructureType = 15
	TypePhysicalMemoryArray               StructureType = 16
	TypeMemoryDevice                      StructureType = 17
	Type32BitMemoryErrorInformation       StructureType = 18
	TypeMemoryArrayMappedAddress          StructureType = 19
	TypeMemoryDeviceMappedAddress         StructureType = 20
	TypeBuiltInPointingDevice             StructureType = 21
	TypePortableBattery                   StructureType = 22
	TypeSystemReset                       StructureType = 23
	TypeHardwareSecurity                  StructureType = 24
	TypeSystemPowerControls               StructureType = 25
	TypeVoltageProbe                      StructureType = 26
	TypeCoolingDevice                     StructureType = 27
	TypeTemperatureProbe                  StructureType = 28
	TypeElectricalCurrentProbe            StructureType = 29
	TypeOutOfBandRemoteAccess             StructureType = 30
	TypeBootIntegrityServices             StructureType = 31
	TypeSystemBootInformation             StructureType = 32
	Type64BitMemoryErrorInformation       StructureType = 33
	TypeManagementDevice                  StructureType = 34
	TypeManagementDeviceComponent         StructureType = 35
	TypeManagementDeviceThresholdData     StructureType = 36
	TypeMemoryChannel                     StructureType = 37
	TypeIPMIDeviceInformation             StructureType = 38
	TypeSystemPowerSupply                 StructureType = 39
	TypeAdditionalInformation             StructureType = 40
	TypeOnboardDevicesExtendedInformation StructureType = 41
	TypeManagementControllerHostInterface StructureType = 42
	TypeTPMDevice                         StructureType = 43
	TypeProcessorAdditionalInformation    StructureType = 44
	TypeFirmwareInventoryInformation      StructureType = 45
	TypeStringProperty                    StructureType = 46
	TypeInactive                          StructureType = 126
	TypeEndOfTable                        StructureType = 127
	typeOEMStart                          StructureType = 128
)

var structureTypeNames = map[StructureType]string{
	TypeBIOSInformation:                   "BIOS Information",
	TypeSystemInformation:                 "System Information",
	TypeBaseboardInformation:              "Baseboard Information",
	TypeChassisInformation:                "Chassis Information",
	TypeProcessorInformation:              "Processor Information",
	TypeMemoryControllerInformation:       "Memory Controller Information",
	TypeMemoryModuleInformation:           "Memory Module Information",
	TypeCacheInformation:                  "Cache Information",
	TypePortConnectorInformation:          "Port Connector Information",
	TypeSystemSlots:                       "System Slots",
	TypeOnBoardDevicesInformation:         "On Board Devices Information",
	TypeOEMStrings:                        "OEM Strings",
	TypeSystemConfigurationOptions:        "System Configuration Options",
	TypeBIOSLanguageInformation:           "BIOS Language Information",
	TypeGroupAssociations:                 "Group Associations",
	TypeSystemEventLog:                    "System Event Log",
	TypePhysicalMemoryArray:               "Physical Memory Array",
	TypeMemoryDevice:                      "Memory Device",
	Type32BitMemoryErrorInformation:       "32-bit Memory Error Information",
	TypeMemoryArrayMappedAddress:          "Memory Array Mapped Address",
	TypeMemoryDeviceMappedAddress:         "Memory Device Mapped Address",
	TypeBuiltInPointingDevice:             "Built-in Pointing Device",
	TypePortableBattery:                   "Portable Battery",
	TypeSystemReset:                       "System Reset",
	TypeHardwareSecurity:                  "Hardware Security",
	TypeSystemPowerControls:               "System Power Controls",
	TypeVoltageProbe:                      "Voltage Probe",
	TypeCoolingDevice:                     "Cooling Device",
	TypeTemperatureProbe:                  "Temperature Probe",
	TypeElectricalCurrentProbe:            "Electrical Current Probe",
	TypeOutOfBandRemoteAccess:             "Out-of-band Remote Access",
	TypeBootIntegrityServices:             "Boot Integrity Services Entry Point",
	TypeSystemBootInformation:             "System Boot Information",
	Type64BitMemoryErrorInformation:       "64-bit Memory Error Information",
	TypeManagementDevice:                  "Management Device",
	TypeManagementDeviceComponent:         "Management Device Component",
	TypeManagementDeviceThresholdData:     "Management Device Threshold Data",
	TypeMemoryChannel:                     "Memory Channel",
	TypeIPMIDeviceInformation:             "IPMI Device Information",
	TypeSystemPowerSupply:                 "System Power Supply",
	TypeAdditionalInformation:             "Additional Information",
	TypeOnboardDevicesExtendedInformation: "Onboard Devices Extended Information",
	TypeManagementControllerHostInterface: "Management Controller Host Interface",
	TypeTPMDevice:                         "TPM Device",
	TypeProcessorAdditionalInformation:    "Processor Additional Information",
	TypeFirmwareInventoryInformation:      "Firmware Inventory Information",
	TypeStringProperty:                    "String Property",
	TypeInactive:                          "Inactive",
	TypeEndOfTable:                        "End Of Table",
}

// 返回结构类型的字符串表示
func (t StructureType) String() string {
	if s, ok := structureTypeNames[t]; ok {
		return s
	}
	if t >= typeOEMStart {
		return fmt.Sprintf("OEM-specific Type (%d)", uint8(t))
	}
	return fmt.Sprintf("Unknown Type (%d)", uint8(t))
}

// Header 是结构表中一个结构的头部
// data 借用自结构表缓冲区，从头部开始，到字符串集的终止符为止
type Header struct {
	Type   StructureType
	Length uint8
	Handle uint16

	data []byte
}

// ParseHeader 解析buf开头的单个结构
func ParseHeader(buf []byte) (Header, error) {
	w := NewWalker(buf, 1)
	if w.Next() {
		return w.Header(), nil
	}
	if err := w.Err(); err != nil {
		return Header{}, err
	}
	return Header{}, errors.Wrapf(ErrCorruptTable, "%d字节中没有结构", len(buf))
}

// Data 返回整个结构的原始字节，包括字符串集
func (h Header) Data() []byte {
	return h.data
}

// Formatted 返回格式化区域，包括头部本身
// 当声明的长度超出缓冲区时，结果会被截断
func (h Header) Formatted() []byte {
	if int(h.Length) > len(h.data) {
		return h.data
	}
	return h.data[:h.Length]
}

// Strings 提取该结构的字符串集
func (h Header) Strings() StringSet {
	return parseStrings(h.data, int(h.Length))
}

func (h Header) String() string {
	return fmt.Sprintf("Handle 0x%04X, DMI type %d, %d bytes", h.Handle, uint8(h.Type), h.Length)
}
