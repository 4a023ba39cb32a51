// Package config 读取smbioshelper的配置文件和环境变量
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// DefaultEntryPoint 是Linux sysfs导出的入口点
	DefaultEntryPoint = "/sys/firmware/dmi/tables/smbios_entry_point"
	// DefaultTable 是Linux sysfs导出的结构表
	DefaultTable = "/sys/firmware/dmi/tables/DMI"

	envPrefix = "SMBIOS"
)

// Config 是smbioshelper的配置
type Config struct {
	EntryPoint string `mapstructure:"entry_point"`
	Table      string `mapstructure:"table"`
	LogLevel   string `mapstructure:"log_level"`
}

// New 返回带默认值和环境变量绑定的viper实例
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("entry_point", DefaultEntryPoint)
	v.SetDefault("table", DefaultTable)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// Load 从path读取配置，path为空时只使用默认值和环境变量
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "读取配置文件 %s", path)
		}
	}
	return Unmarshal(v)
}

// Unmarshal 把v中的设置解码为Config
func Unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "解析配置")
	}
	return &cfg, nil
}
