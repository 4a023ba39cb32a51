package smbios

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Walker 按顺序遍历结构表中的结构
//
//	w := NewWalker(buf, 0)
//	for w.Next() {
//		h := w.Header()
//	}
//	err := w.Err()
//
// 遍历在以下任一情况结束：达到声明的结构数、遇到End Of Table、
// 剩余字节不足一个头部、或遇到长度小于4的结构(此时Err返回ErrCorruptTable)
type Walker struct {
	buf    []byte
	cursor int
	max    int
	count  int

	header Header
	err    error
	done   bool
}

// NewWalker 返回遍历buf的Walker，maxStructures为0表示不限制结构数
func NewWalker(buf []byte, maxStructures int) *Walker {
	return &Walker{
		buf: buf,
		max: maxStructures,
	}
}

// Next 前进到下一个结构，没有更多结构时返回false
func (w *Walker) Next() bool {
	if w.done {
		return false
	}
	if w.max > 0 && w.count >= w.max {
		return w.stop(nil)
	}
	if w.cursor+HeaderSize > len(w.buf) {
		return w.stop(nil)
	}

	b := w.buf[w.cursor:]
	h := Header{
		Type:   StructureType(b[0]),
		Length: b[1],
		Handle: binary.LittleEndian.Uint16(b[2:4]),
	}
	if h.Length < HeaderSize {
		return w.stop(errors.Wrapf(ErrCorruptTable, "偏移%#x处的结构(类型%d，句柄0x%04X)长度为%d",
			w.cursor, uint8(h.Type), h.Handle, h.Length))
	}
	if h.Type == TypeEndOfTable {
		return w.stop(nil)
	}

	// 跳过格式化区域，寻找字符串集的双空终止符
	next := w.cursor + int(h.Length)
	for next+1 < len(w.buf) && (w.buf[next] != 0 || w.buf[next+1] != 0) {
		next++
	}
	next += 2
	if next > len(w.buf) {
		next = len(w.buf)
	}

	h.data = w.buf[w.cursor:next:next]
	w.header = h
	w.cursor = next
	w.count++
	return true
}

func (w *Walker) stop(err error) bool {
	w.err = err
	w.done = true
	return false
}

// Header 返回当前结构的头部
func (w *Walker) Header() Header {
	return w.header
}

// Err 返回遍历中遇到的结构表损坏，已经返回的结构仍然有效
func (w *Walker) Err() error {
	return w.err
}

// Offset 返回下一个结构在缓冲区中的偏移量
func (w *Walker) Offset() int {
	return w.cursor
}
