package smbios

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Entry 是已解码的结构
// 变体集合是封闭的：BIOSInformation、SystemInformation、PortConnector、
// MemoryDevice 和 Unrecognized
type Entry interface {
	Header() Header
	Type() StructureType
	Version() Version
	// EntrySize 返回格式化区域的大小，不包括字符串集
	EntrySize() int
	// Tiers 返回已填充的版本层，从旧到新
	Tiers() []Version
	// Fields 返回所有字段的标签和字符串值
	Fields() []Field
	// Describe 返回由Fields生成的多行描述
	Describe() string

	isEntry()
}

// tier 描述一个按版本追加的字段层
// 当结构长度至少为length且版本不早于since时，[offset, length)上的字段有效
type tier struct {
	since  Version
	offset int
	length int
}

// entry 是所有解码器共享的部分
type entry struct {
	header  Header
	version Version
	strings StringSet
	tiers   []Version
}

func newEntry(h Header, v Version, want StructureType) (entry, error) {
	if h.Type != want {
		return entry{}, errors.Wrapf(ErrTypeMismatch, "需要%s，得到%s (句柄0x%04X)", want, h.Type, h.Handle)
	}
	return entry{
		header:  h,
		version: v,
		strings: h.Strings(),
	}, nil
}

// overlay 在满足长度和版本门限时把该层的字段读入layer
func (e *entry) overlay(t tier, layer interface{}) bool {
	formatted := e.header.Formatted()
	if int(e.header.Length) < t.length || len(formatted) < t.length || !e.version.AtLeast(t.since) {
		return false
	}
	if err := binary.Read(bytes.NewReader(formatted[t.offset:t.length]), binary.LittleEndian, layer); err != nil {
		return false
	}
	// 同一版本可以分成多段，只记录一次
	if n := len(e.tiers); n == 0 || e.tiers[n-1] != t.since {
		e.tiers = append(e.tiers, t.since)
	}
	return true
}

func (e *entry) Header() Header { return e.header }

func (e *entry) Type() StructureType { return e.header.Type }

func (e *entry) Version() Version { return e.version }

func (e *entry) EntrySize() int { return int(e.header.Length) }

func (e *entry) Tiers() []Version {
	return append([]Version(nil), e.tiers...)
}

// str 解析结构中的字符串索引
func (e *entry) str(index uint8) string {
	return e.strings.Get(index)
}

func (e *entry) isEntry() {}
