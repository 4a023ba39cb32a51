package smbios

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/log"
)

// Table 是已解析的SMBIOS结构表，构造之后不再修改，可以并发读取
type Table struct {
	entryPoint EntryPoint
	version    Version
	buf        []byte
	headers    []Header
	corrupt    error
}

// Open 解析入口点并遍历结构表
// 入口点无效时返回ErrInvalidEntryPoint；结构表中途损坏时保留已解析的结构，
// 损坏原因由Corrupt返回
func Open(entryPoint, table []byte) (*Table, error) {
	ep, err := ParseEntryPoint(entryPoint)
	if err != nil {
		return nil, err
	}
	buf := table
	// 64位入口点的长度只是上限，同样用作遍历边界
	if limit := int(ep.TableLength()); limit > 0 && limit < len(buf) {
		buf = buf[:limit]
	}
	t := newTable(ep.Version(), buf, ep.StructureCount())
	t.entryPoint = ep
	return t, nil
}

// NewTable 在版本由其它途径获得时直接遍历结构表
func NewTable(v Version, table []byte) *Table {
	return newTable(v, table, 0)
}

func newTable(v Version, buf []byte, maxStructures int) *Table {
	t := &Table{
		version: v,
		buf:     buf,
	}
	w := NewWalker(buf, maxStructures)
	for w.Next() {
		t.headers = append(t.headers, w.Header())
	}
	if err := w.Err(); err != nil {
		log.Warnf("在偏移%#x处停止，保留%d个结构: %v", w.Offset(), len(t.headers), err)
		t.corrupt = err
	}
	return t
}

// EntryPoint 返回用于定位结构表的入口点，NewTable创建的表返回nil
func (t *Table) EntryPoint() EntryPoint {
	return t.entryPoint
}

func (t *Table) Version() Version {
	return t.version
}

// Bytes 返回遍历的结构表字节
func (t *Table) Bytes() []byte {
	return t.buf
}

// Structures 按表中顺序返回所有结构的头部，不包括End Of Table
func (t *Table) Structures() []Header {
	return append([]Header(nil), t.headers...)
}

// Corrupt 返回遍历时遇到的损坏，没有损坏时返回nil
func (t *Table) Corrupt() error {
	return t.corrupt
}

// Find 返回指定类型的所有结构
func (t *Table) Find(st StructureType) []Header {
	var found []Header
	for _, h := range t.headers {
		if h.Type == st {
			found = append(found, h)
		}
	}
	return found
}

// Handle 按句柄查找结构，句柄只在同一份表中唯一
func (t *Table) Handle(handle uint16) (Header, bool) {
	for _, h := range t.headers {
		if h.Handle == handle {
			return h, true
		}
	}
	return Header{}, false
}

// Decode 用表的版本解码一个结构
func (t *Table) Decode(h Header) (Entry, error) {
	return Decode(h, t.version)
}

// Entries 解码所有有解码器的结构
// 单个结构的解码失败不会中断其它结构，所有失败合并到返回的错误中
func (t *Table) Entries() ([]Entry, error) {
	var (
		entries []Entry
		errs    *multierror.Error
	)
	for _, h := range t.headers {
		e, err := Decode(h, t.version)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "句柄0x%04X", h.Handle))
			continue
		}
		if e == nil {
			log.Debugf("跳过%s", h)
			continue
		}
		entries = append(entries, e)
	}
	return entries, errs.ErrorOrNil()
}
