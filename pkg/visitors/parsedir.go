package visitors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

// 从目录读取结构表
// 目录可以是sysfs的 /sys/firmware/dmi/tables，也可以是extract的输出
type ParseDir struct {
	BasePath string
}

// 有入口点文件时用它定位版本，否则使用summary.json中记录的版本
func (v *ParseDir) Parse() (*smbios.Table, error) {
	table, err := os.ReadFile(filepath.Join(v.BasePath, TableFile))
	if err != nil {
		return nil, err
	}

	ep, err := os.ReadFile(filepath.Join(v.BasePath, EntryPointFile))
	if err == nil {
		return smbios.Open(ep, table)
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	jsonbuf, err := os.ReadFile(filepath.Join(v.BasePath, SummaryFile))
	if err != nil {
		return nil, err
	}
	var view TableView
	if err := json.Unmarshal(jsonbuf, &view); err != nil {
		return nil, err
	}
	var version smbios.Version
	if _, err := fmt.Sscanf(view.Version, "%d.%d", &version.Major, &version.Minor); err != nil {
		return nil, fmt.Errorf("%s 中的版本 %q 无效: %w", SummaryFile, view.Version, err)
	}
	return smbios.NewTable(version, table), nil
}
