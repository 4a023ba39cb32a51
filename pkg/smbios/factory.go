package smbios

// Decode 按结构类型选择解码器
// 没有解码器的类型返回 (nil, nil)，调用者应跳过这些结构
func Decode(h Header, v Version) (Entry, error) {
	switch h.Type {
	case TypeBIOSInformation:
		e, err := NewBIOSInformation(h, v)
		if err != nil {
			return nil, err
		}
		return e, nil
	case TypeSystemInformation:
		e, err := NewSystemInformation(h, v)
		if err != nil {
			return nil, err
		}
		return e, nil
	case TypePortConnectorInformation:
		e, err := NewPortConnector(h, v)
		if err != nil {
			return nil, err
		}
		return e, nil
	case TypeMemoryDevice:
		e, err := NewMemoryDevice(h, v)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, nil
}

// DecodeAny 与Decode相同，但没有解码器的类型返回Unrecognized
func DecodeAny(h Header, v Version) (Entry, error) {
	e, err := Decode(h, v)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return NewUnrecognized(h, v), nil
	}
	return e, nil
}

// Decoded 报告该类型是否有专门的解码器
func Decoded(t StructureType) bool {
	switch t {
	case TypeBIOSInformation, TypeSystemInformation, TypePortConnectorInformation, TypeMemoryDevice:
		return true
	}
	return false
}
