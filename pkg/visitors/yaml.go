package visitors

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

// 将结构表打印为YAML
type YAML struct {
	collector

	W io.Writer
}

func (v *YAML) Run(t *smbios.Table) error {
	if err := v.collect(t, v); err != nil {
		return err
	}
	enc := yaml.NewEncoder(v.W)
	enc.SetIndent(2)
	if err := enc.Encode(v.view); err != nil {
		return err
	}
	return enc.Close()
}

func init() {
	RegisterCLI("yaml", "为整个结构表生成YAML", 0, func(args []string) (smbios.Visitor, error) {
		return &YAML{
			W: os.Stdout,
		}, nil
	})
}
