package visitors

import (
	"fmt"
	"io"
	"os"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

// Describe 以文本形式打印入口点和每个结构的所有字段
type Describe struct {
	W io.Writer
}

func (v *Describe) Run(t *smbios.Table) error {
	if ep := t.EntryPoint(); ep != nil {
		fmt.Fprintf(v.W, "%s\n\n", ep.Describe())
	}
	fmt.Fprintf(v.W, "SMBIOS %s present.\n", t.Version())
	fmt.Fprintf(v.W, "%d structures occupying %d bytes.\n\n", len(t.Structures()), len(t.Bytes()))
	if err := t.Apply(v); err != nil {
		return err
	}
	if err := t.Corrupt(); err != nil {
		fmt.Fprintf(v.W, "Table is truncated: %v\n", err)
	}
	return nil
}

func (v *Describe) Visit(e smbios.Entry) error {
	_, err := fmt.Fprintf(v.W, "%s\n\n", e.Describe())
	return err
}

func init() {
	RegisterCLI("describe", "以文本形式打印所有结构", 0, func(args []string) (smbios.Visitor, error) {
		return &Describe{
			W: os.Stdout,
		}, nil
	})
}
