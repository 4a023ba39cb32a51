package smbios

// PortConnectorType 是端口连接器的物理类型
type PortConnectorType uint8

// PortType 是端口的功能类型
type PortType uint8

const (
	PortConnectorTypeNone PortConnectorType = 0x00
	PortTypeNone          PortType          = 0x00
)

var portConnectorTier20 = tier{since: Version{2, 0}, offset: 0x04, length: 0x09}

type portConnector20 struct {
	InternalReferenceDesignator uint8
	InternalConnectorType       uint8
	ExternalReferenceDesignator uint8
	ExternalConnectorType       uint8
	PortType                    uint8
}

var portConnectorTypeNames = map[uint8]string{
	0x00: "None",
	0x01: "Centronics",
	0x02: "Mini Centronics",
	0x03: "Proprietary",
	0x04: "DB-25 male",
	0x05: "DB-25 female",
	0x06: "DB-15 male",
	0x07: "DB-15 female",
	0x08: "DB-9 male",
	0x09: "DB-9 female",
	0x0A: "RJ-11",
	0x0B: "RJ-45",
	0x0C: "50 Pin MiniSCSI",
	0x0D: "Mini DIN",
	0x0E: "Micro DIN",
	0x0F: "PS/2",
	0x10: "Infrared",
	0x11: "HP-HIL",
	0x12: "Access Bus (USB)",
	0x13: "SSA SCSI",
	0x14: "Circular DIN-8 male",
	0x15: "Circular DIN-8 female",
	0x16: "On Board IDE",
	0x17: "On Board Floppy",
	0x18: "9 Pin Dual Inline (pin 10 cut)",
	0x19: "25 Pin Dual Inline (pin 26 cut)",
	0x1A: "50 Pin Dual Inline",
	0x1B: "68 Pin Dual Inline",
	0x1C: "On Board Sound Input From CD-ROM",
	0x1D: "Mini Centronics Type-14",
	0x1E: "Mini Centronics Type-26",
	0x1F: "Mini Jack (headphones)",
	0x20: "BNC",
	0x21: "IEEE 1394",
	0x22: "SAS/SATA Plug Receptacle",
	0x23: "USB Type-C Receptacle",
	0xA0: "PC-98",
	0xA1: "PC-98 Hireso",
	0xA2: "PC-H98",
	0xA3: "PC-98 Note",
	0xA4: "PC-98 Full",
	0xFF: "Other",
}

var portTypeNames = map[uint8]string{
	0x00: "None",
	0x01: "Parallel Port XT/AT Compatible",
	0x02: "Parallel Port PS/2",
	0x03: "Parallel Port ECP",
	0x04: "Parallel Port EPP",
	0x05: "Parallel Port ECP/EPP",
	0x06: "Serial Port XT/AT Compatible",
	0x07: "Serial Port 16450 Compatible",
	0x08: "Serial Port 16550 Compatible",
	0x09: "Serial Port 16550A Compatible",
	0x0A: "SCSI Port",
	0x0B: "MIDI Port",
	0x0C: "Joystick Port",
	0x0D: "Keyboard Port",
	0x0E: "Mouse Port",
	0x0F: "SSA SCSI",
	0x10: "USB",
	0x11: "Firewire (IEEE P1394)",
	0x12: "PCMCIA Type I",
	0x13: "PCMCIA Type II",
	0x14: "PCMCIA Type III",
	0x15: "Cardbus",
	0x16: "Access Bus Port",
	0x17: "SCSI II",
	0x18: "SCSI Wide",
	0x19: "PC-98",
	0x1A: "PC-98 Hireso",
	0x1B: "PC-H98",
	0x1C: "Video Port",
	0x1D: "Audio Port",
	0x1E: "Modem Port",
	0x1F: "Network Port",
	0x20: "SATA",
	0x21: "SAS",
	0x22: "MFDP (Multi-Function Display Port)",
	0x23: "Thunderbolt",
	0xA0: "8251 Compatible",
	0xA1: "8251 FIFO Compatible",
	0xFF: "Other",
}

func (c PortConnectorType) String() string {
	return enumString(uint8(c), portConnectorTypeNames)
}

func (p PortType) String() string {
	return enumString(uint8(p), portTypeNames)
}

// PortConnector 是类型8结构
type PortConnector struct {
	entry

	v20 *portConnector20
}

// NewPortConnector 解码类型8结构
func NewPortConnector(h Header, v Version) (*PortConnector, error) {
	e, err := newEntry(h, v, TypePortConnectorInformation)
	if err != nil {
		return nil, err
	}
	p := &PortConnector{entry: e}

	var v20 portConnector20
	if p.overlay(portConnectorTier20, &v20) {
		p.v20 = &v20
	}
	return p, nil
}

// InternalReferenceDesignator 返回内部(主板上)连接器的标识
func (p *PortConnector) InternalReferenceDesignator() string {
	if p.v20 == nil {
		return StringNotSpecified
	}
	return p.str(p.v20.InternalReferenceDesignator)
}

func (p *PortConnector) InternalConnectorType() PortConnectorType {
	if p.v20 == nil {
		return PortConnectorTypeNone
	}
	return PortConnectorType(p.v20.InternalConnectorType)
}

// ExternalReferenceDesignator 返回外部(用户可见)连接器的标识
func (p *PortConnector) ExternalReferenceDesignator() string {
	if p.v20 == nil {
		return StringNotSpecified
	}
	return p.str(p.v20.ExternalReferenceDesignator)
}

func (p *PortConnector) ExternalConnectorType() PortConnectorType {
	if p.v20 == nil {
		return PortConnectorTypeNone
	}
	return PortConnectorType(p.v20.ExternalConnectorType)
}

func (p *PortConnector) PortType() PortType {
	if p.v20 == nil {
		return PortTypeNone
	}
	return PortType(p.v20.PortType)
}

func (p *PortConnector) Fields() []Field {
	return []Field{
		{"Internal Reference Designator", p.InternalReferenceDesignator()},
		{"Internal Connector Type", p.InternalConnectorType().String()},
		{"External Reference Designator", p.ExternalReferenceDesignator()},
		{"External Connector Type", p.ExternalConnectorType().String()},
		{"Port Type", p.PortType().String()},
	}
}

func (p *PortConnector) Describe() string {
	return describeEntry(p)
}
