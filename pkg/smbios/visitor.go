package smbios

import (
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/log"
)

// Visitor 表示可以应用于结构表的操作
type Visitor interface {
	// Run 包装Visit并执行一些设置和清理任务
	Run(*Table) error

	// Visit 对每个结构调用一次
	Visit(Entry) error
}

// Apply 按表中顺序对每个结构调用访问者，没有解码器的结构以Unrecognized传入
func (t *Table) Apply(v Visitor) error {
	for _, h := range t.headers {
		e, err := DecodeAny(h, t.version)
		if err != nil {
			log.Warnf("跳过%s: %v", h, err)
			continue
		}
		if err := v.Visit(e); err != nil {
			return err
		}
	}
	return nil
}
