package smbios

import (
	"bytes"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/unicode"
)

const (
	// StringNotSpecified 是字符串索引0的固定值
	StringNotSpecified = "Not Specified"
	// StringBadIndex 是引用了不存在字符串时的值
	StringBadIndex = "Bad index"
)

// StringSet 是一个结构的字符串集，按1开始的索引引用
type StringSet []string

// parseStrings 从data[length:]开始提取以空字符结尾的字符串，直到双空终止符
func parseStrings(data []byte, length int) StringSet {
	if length >= len(data) {
		return nil
	}
	var set StringSet
	b := data[length:]
	for len(b) > 0 {
		i := bytes.IndexByte(b, 0)
		if i == 0 {
			break
		}
		if i < 0 {
			// 没有终止符，截断的表
			set = append(set, unicode.DMIString(b))
			break
		}
		set = append(set, unicode.DMIString(b[:i]))
		b = b[i+1:]
	}
	return set
}

// Get 返回索引对应的字符串
func (s StringSet) Get(index uint8) string {
	if index == 0 {
		return StringNotSpecified
	}
	if int(index) > len(s) {
		return StringBadIndex
	}
	return s[index-1]
}
