package visitors

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

// 将结构表打印为JSON
type JSON struct {
	collector

	// JSON写入到这个writer
	W io.Writer
}

// 包装Visit并执行一些设置和清理任务
func (v *JSON) Run(t *smbios.Table) error {
	if err := v.collect(t, v); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v.view, "", "\t")
	if err != nil {
		return err
	}
	fmt.Fprintln(v.W, string(b))
	return nil
}

func init() {
	RegisterCLI("json", "为整个结构表生成JSON", 0, func(args []string) (smbios.Visitor, error) {
		return &JSON{
			W: os.Stdout,
		}, nil
	})
}
