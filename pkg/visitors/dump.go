package visitors

import (
	"io"
	"os"
	"strconv"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/compression"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

// 按句柄导出单个结构的原始字节，包括字符串集
type Dump struct {
	// 输入
	Predicate FindPredicate
	// 为nil时不压缩
	Compressor compression.Compressor

	// 输出
	// 结构将写入此writer，实现io.Closer时Run结束后关闭
	W io.Writer
}

// 先运行find确定要导出的结构
func (v *Dump) Run(t *smbios.Table) (err error) {
	if c, ok := v.W.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}()
	}
	e, err := FindExactlyOne(t, v.Predicate)
	if err != nil {
		return err
	}
	return v.Visit(e)
}

// 把结构写入W
func (v *Dump) Visit(e smbios.Entry) error {
	buf := e.Header().Data()
	if v.Compressor != nil {
		var err error
		if buf, err = v.Compressor.Encode(buf); err != nil {
			return err
		}
	}
	_, err := v.W.Write(buf)
	return err
}

func init() {
	RegisterCLI("dump", "按句柄导出结构，文件以.xz结尾时压缩", 2, func(args []string) (smbios.Visitor, error) {
		handle, err := strconv.ParseUint(args[0], 0, 16)
		if err != nil {
			return nil, err
		}

		file, err := os.OpenFile(args[1], os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return nil, err
		}

		return &Dump{
			Predicate:  FindHandlePredicate(uint16(handle)),
			Compressor: compression.CompressorFromPath(args[1]),
			W:          file,
		}, nil
	})
}
