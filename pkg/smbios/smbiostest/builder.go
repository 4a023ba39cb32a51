// Package smbiostest 构造用于测试的合成SMBIOS入口点和结构表
package smbiostest

import (
	"encoding/binary"
)

// TableAddress 是合成入口点中写入的结构表地址
const TableAddress = 0x000F0000

// Structure 构造一个结构：4字节头部、formatted、字符串集
// formatted 不包括头部，长度字段为 4+len(formatted)
func Structure(typ uint8, handle uint16, formatted []byte, strs ...string) []byte {
	b := []byte{typ, uint8(4 + len(formatted)), 0, 0}
	binary.LittleEndian.PutUint16(b[2:], handle)
	b = append(b, formatted...)
	if len(strs) == 0 {
		return append(b, 0, 0)
	}
	for _, s := range strs {
		b = append(b, s...)
		b = append(b, 0)
	}
	return append(b, 0)
}

// EndOfTable 构造类型127的结束结构
func EndOfTable(handle uint16) []byte {
	return Structure(127, handle, nil)
}

// Table 按顺序拼接结构
func Table(structures ...[]byte) []byte {
	var b []byte
	for _, s := range structures {
		b = append(b, s...)
	}
	return b
}

func checksum(b []byte) uint8 {
	var sum uint8
	for _, c := range b {
		sum += c
	}
	return -sum
}

// EntryPoint32 构造校验和正确的32位入口点
func EntryPoint32(major, minor uint8, tableLength, structures uint16) []byte {
	b := make([]byte, 0x1F)
	copy(b, "_SM_")
	b[0x05] = 0x1F
	b[0x06] = major
	b[0x07] = minor
	binary.LittleEndian.PutUint16(b[0x08:], 0x100)
	copy(b[0x10:], "_DMI_")
	binary.LittleEndian.PutUint16(b[0x16:], tableLength)
	binary.LittleEndian.PutUint32(b[0x18:], TableAddress)
	binary.LittleEndian.PutUint16(b[0x1C:], structures)
	b[0x1E] = major<<4 | minor&0x0F
	b[0x15] = checksum(b[0x10:0x1F])
	b[0x04] = checksum(b)
	return b
}

// EntryPoint64 构造校验和正确的64位入口点
func EntryPoint64(major, minor uint8, maxSize uint32) []byte {
	b := make([]byte, 0x18)
	copy(b, "_SM3_")
	b[0x06] = 0x18
	b[0x07] = major
	b[0x08] = minor
	b[0x0A] = 0x01
	binary.LittleEndian.PutUint32(b[0x0C:], maxSize)
	binary.LittleEndian.PutUint64(b[0x10:], TableAddress)
	b[0x05] = checksum(b)
	return b
}

// EntryPointLegacy 构造校验和正确的旧版DMI入口点
func EntryPointLegacy(bcdRevision uint8, tableLength, structures uint16) []byte {
	b := make([]byte, 0x0F)
	copy(b, "_DMI_")
	binary.LittleEndian.PutUint16(b[0x06:], tableLength)
	binary.LittleEndian.PutUint32(b[0x08:], TableAddress)
	binary.LittleEndian.PutUint16(b[0x0C:], structures)
	b[0x0E] = bcdRevision
	b[0x05] = checksum(b)
	return b
}

// BIOSInformation 构造一个长度为0x12的类型0结构
func BIOSInformation(handle uint16, segment uint16, romSize uint8, vendor, version, date string) []byte {
	f := make([]byte, 0x12-4)
	f[0] = 1
	f[1] = 2
	binary.LittleEndian.PutUint16(f[2:], segment)
	f[4] = 3
	f[5] = romSize
	// PCI、BIOS可升级、可选择启动
	binary.LittleEndian.PutUint64(f[6:], 1<<7|1<<11|1<<16)
	return Structure(0, handle, f, vendor, version, date)
}

// MemoryDevice 构造一个长度为0x1C的类型17结构
func MemoryDevice(handle uint16, size uint16, speed uint16, locator, manufacturer, serial, asset, part string) []byte {
	f := make([]byte, 0x1C-4)
	binary.LittleEndian.PutUint16(f[0x00:], 0x1000)
	binary.LittleEndian.PutUint16(f[0x02:], 0xFFFE)
	binary.LittleEndian.PutUint16(f[0x04:], 72)
	binary.LittleEndian.PutUint16(f[0x06:], 64)
	binary.LittleEndian.PutUint16(f[0x08:], size)
	f[0x0A] = 0x09 // DIMM
	f[0x0B] = 0x00
	f[0x0C] = 1
	f[0x0D] = 0
	f[0x0E] = 0x1A // DDR4
	binary.LittleEndian.PutUint16(f[0x0F:], 1<<7|1<<13)
	binary.LittleEndian.PutUint16(f[0x11:], speed)
	f[0x13] = 2
	f[0x14] = 3
	f[0x15] = 4
	f[0x16] = 5
	f[0x17] = 2
	return Structure(17, handle, f, locator, manufacturer, serial, asset, part)
}

// SystemInformation 构造一个长度为0x1B的类型1结构，版本字符串和SKU留空
func SystemInformation(handle uint16, uuid [16]byte, manufacturer, product, serial string) []byte {
	f := make([]byte, 0x1B-4)
	f[0] = 1
	f[1] = 2
	f[3] = 3
	copy(f[0x04:], uuid[:])
	f[0x14] = 0x06 // 电源开关
	return Structure(1, handle, f, manufacturer, product, serial)
}
