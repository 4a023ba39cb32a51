package visitors

import (
	"fmt"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

// TableView 是结构表的可序列化视图
type TableView struct {
	Anchor     string      `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Version    string      `json:"version" yaml:"version"`
	Length     int         `json:"length" yaml:"length"`
	Corrupt    string      `json:"corrupt,omitempty" yaml:"corrupt,omitempty"`
	Structures []EntryView `json:"structures" yaml:"structures"`
}

// EntryView 是单个结构的可序列化视图
type EntryView struct {
	Handle string         `json:"handle" yaml:"handle"`
	Type   uint8          `json:"type" yaml:"type"`
	Name   string         `json:"name" yaml:"name"`
	Length uint8          `json:"length" yaml:"length"`
	Tiers  []string       `json:"tiers,omitempty" yaml:"tiers,omitempty"`
	Fields []smbios.Field `json:"fields" yaml:"fields"`
	// File 是extract写出的原始字节文件，相对于提取目录
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

func newTableView(t *smbios.Table) TableView {
	view := TableView{
		Version:    t.Version().String(),
		Length:     len(t.Bytes()),
		Structures: []EntryView{},
	}
	if ep := t.EntryPoint(); ep != nil {
		view.Anchor = ep.Anchor().String()
	}
	if err := t.Corrupt(); err != nil {
		view.Corrupt = err.Error()
	}
	return view
}

// NewEntryView 生成结构的视图
func NewEntryView(e smbios.Entry) EntryView {
	h := e.Header()
	view := EntryView{
		Handle: fmt.Sprintf("0x%04X", h.Handle),
		Type:   uint8(h.Type),
		Name:   h.Type.String(),
		Length: h.Length,
		Fields: e.Fields(),
	}
	for _, v := range e.Tiers() {
		view.Tiers = append(view.Tiers, v.String())
	}
	return view
}

// collector 收集结构表的视图，供序列化访问者使用
type collector struct {
	view TableView
}

func (c *collector) collect(t *smbios.Table, v smbios.Visitor) error {
	c.view = newTableView(t)
	return t.Apply(v)
}

func (c *collector) Visit(e smbios.Entry) error {
	c.view.Structures = append(c.view.Structures, NewEntryView(e))
	return nil
}
