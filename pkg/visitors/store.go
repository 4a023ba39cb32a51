package visitors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/log"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/store"
)

// Store 把结构表保存为SQLite数据库中的一个快照
type Store struct {
	Path string

	// 快照ID写入此writer，可以为nil
	W io.Writer

	// 输出
	ID int64

	snapshot store.Snapshot
}

func (v *Store) Run(t *smbios.Table) error {
	db, err := store.New(v.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	view := newTableView(t)
	v.snapshot = store.Snapshot{
		Anchor:      view.Anchor,
		Version:     view.Version,
		TableLength: view.Length,
	}
	if err := t.Apply(v); err != nil {
		return err
	}

	if v.ID, err = db.SaveSnapshot(context.Background(), &v.snapshot); err != nil {
		return err
	}
	log.Infof("保存快照%d，%d个结构，%s", v.ID, len(v.snapshot.Structures), v.Path)
	if v.W != nil {
		fmt.Fprintln(v.W, v.ID)
	}
	return nil
}

func (v *Store) Visit(e smbios.Entry) error {
	fields, err := json.Marshal(e.Fields())
	if err != nil {
		return err
	}
	h := e.Header()
	v.snapshot.Structures = append(v.snapshot.Structures, store.Structure{
		Handle: h.Handle,
		Type:   uint8(h.Type),
		Name:   h.Type.String(),
		Raw:    h.Data(),
		Fields: string(fields),
	})
	return nil
}

func init() {
	RegisterCLI("store", "把结构表保存到SQLite数据库", 1, func(args []string) (smbios.Visitor, error) {
		return &Store{
			Path: args[0],
			W:    os.Stdout,
		}, nil
	})
}
