package visitors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

func TestParseCLI(t *testing.T) {
	v, err := ParseCLI([]string{"json", "find", "17", "summary"})
	require.NoError(t, err)
	require.Len(t, v, 3)
	assert.IsType(t, &JSON{}, v[0])
	assert.IsType(t, &Find{}, v[1])
	assert.IsType(t, &Summary{}, v[2])
}

func TestParseCLIErrors(t *testing.T) {
	_, err := ParseCLI([]string{"frobnicate"})
	assert.ErrorContains(t, err, "找不到命令 'frobnicate'")

	_, err = ParseCLI([]string{"find"})
	assert.ErrorContains(t, err, "参数太少")

	_, err = ParseCLI([]string{"dump", "not-a-handle", "out.bin"})
	assert.Error(t, err)
}

func TestRegisterCLIDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterCLI("json", "", 0, func([]string) (smbios.Visitor, error) { return &JSON{}, nil })
	})
}

func TestListCLI(t *testing.T) {
	list := ListCLI()
	for _, name := range []string{"describe", "dump", "extract", "find", "json", "store", "summary", "yaml"} {
		assert.Contains(t, list, "  "+name+" ")
	}
	assert.Contains(t, list, "  json                  : 为整个结构表生成JSON\n")
}

type countVisitor struct {
	runs int
}

func (v *countVisitor) Run(*smbios.Table) error {
	v.runs++
	return nil
}

func (v *countVisitor) Visit(smbios.Entry) error { return nil }

func TestExecuteCLI(t *testing.T) {
	a, b := &countVisitor{}, &countVisitor{}
	require.NoError(t, ExecuteCLI(testTable(t), []smbios.Visitor{a, b, a}))
	assert.Equal(t, 2, a.runs)
	assert.Equal(t, 1, b.runs)
}
