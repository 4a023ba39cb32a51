// Package smbioshelper 读取入口点和结构表，并在上面执行命令行指定的访问者
package smbioshelper

import (
	"os"

	"github.com/pkg/errors"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/compression"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/config"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/log"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/visitors"
)

// Run 按cfg加载结构表，然后依次执行args中的操作
// 没有操作时打印所有结构
func Run(cfg *config.Config, args ...string) error {
	v, err := visitors.ParseCLI(args)
	if err != nil {
		return err
	}
	if len(v) == 0 {
		v = append(v, &visitors.Describe{W: os.Stdout})
	}

	t, err := Load(cfg)
	if err != nil {
		return err
	}
	return visitors.ExecuteCLI(t, v)
}

// Load 读取cfg指定的结构表
// Table是目录时按sysfs或extract的布局读取，否则分别读取两个文件
func Load(cfg *config.Config) (*smbios.Table, error) {
	if fi, err := os.Stat(cfg.Table); err == nil && fi.IsDir() {
		pd := visitors.ParseDir{BasePath: cfg.Table}
		return pd.Parse()
	}

	ep, err := readFile(cfg.EntryPoint)
	if err != nil {
		return nil, err
	}
	table, err := readFile(cfg.Table)
	if err != nil {
		return nil, err
	}
	t, err := smbios.Open(ep, table)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", cfg.EntryPoint)
	}
	log.Debugf("SMBIOS %s，%d个结构，%d字节", t.Version(), len(t.Structures()), len(t.Bytes()))
	return t, nil
}

// readFile 读取文件，扩展名表示压缩格式时解压
func readFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := compression.CompressorFromPath(path)
	if c == nil {
		return buf, nil
	}
	decoded, err := c.Decode(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "%s解压%s", c.Name(), path)
	}
	return decoded, nil
}
