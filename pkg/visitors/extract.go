package visitors

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

// 与sysfs /sys/firmware/dmi/tables 相同的文件名
const (
	EntryPointFile = "smbios_entry_point"
	TableFile      = "DMI"
	SummaryFile    = "summary.json"
)

var (
	// ExtractForce 允许提取到非空目录
	ExtractForce bool
	// ExtractRemove 在提取前删除现有目录
	ExtractRemove bool
)

// 将结构表和每个结构提取到BasePath
type Extract struct {
	collector

	BasePath string
	Force    bool
	Remove   bool
}

// 将二进制文件简单地转储到指定目录和文件名
// 如果目录不存在则创建，返回相对于BasePath的路径
func (v *Extract) extractBinary(buf []byte, dir, filename string) (string, error) {
	dirPath := filepath.Join(v.BasePath, dir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", err
	}

	fp := filepath.Join(dirPath, filename)
	if err := os.WriteFile(fp, buf, 0666); err != nil {
		// 确保返回""，因为我们不希望无效路径被序列化出去
		return "", err
	}
	return filepath.Join(dir, filename), nil
}

// 包装Visit并执行一些设置和清理任务
func (v *Extract) Run(t *smbios.Table) error {
	// 如果目录已存在，可选择删除
	if v.Remove {
		if err := os.RemoveAll(v.BasePath); err != nil {
			return err
		}
	}

	if !v.Force {
		// 检查目录是否不存在或为空
		files, err := os.ReadDir(v.BasePath)
		if err == nil {
			if len(files) != 0 {
				return errors.New("现有目录非空，使用--force覆盖")
			}
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	if err := os.MkdirAll(v.BasePath, 0755); err != nil {
		return err
	}

	if err := v.collect(t, v); err != nil {
		return err
	}
	if _, err := v.extractBinary(t.Bytes(), ".", TableFile); err != nil {
		return err
	}

	// 输出摘要json
	b, err := json.MarshalIndent(v.view, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(v.BasePath, SummaryFile), b, 0666)
}

// 每个结构写入 type<类型>/<句柄>.bin
func (v *Extract) Visit(e smbios.Entry) error {
	h := e.Header()
	path, err := v.extractBinary(h.Data(), fmt.Sprintf("type%d", uint8(h.Type)), fmt.Sprintf("0x%04X.bin", h.Handle))
	if err != nil {
		return err
	}
	view := NewEntryView(e)
	view.File = path
	v.view.Structures = append(v.view.Structures, view)
	return nil
}

func init() {
	RegisterCLI("extract", "将结构表和每个结构提取到目录", 1, func(args []string) (smbios.Visitor, error) {
		return &Extract{
			BasePath: args[0],
			Force:    ExtractForce,
			Remove:   ExtractRemove,
		}, nil
	})
}
