package unicode

import (
	"unicode/utf8"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/log"
	"golang.org/x/text/encoding/charmap"
)

// DMIString 把DMI字符串字节转换为UTF8
// 固件通常写入ASCII，但也有厂商写入Latin-1字节，这些按ISO-8859-1解码
func DMIString(input []byte) string {
	if utf8.Valid(input) {
		return string(input)
	}
	output, err := charmap.ISO8859_1.NewDecoder().Bytes(input)
	if err != nil {
		log.Errorf("无法解码DMI字符串: %v", err)
		return string(input)
	}
	return string(output)
}
