package smbios

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidEntryPoint 表示没有找到锚点，或者所有候选入口点的校验都失败
	ErrInvalidEntryPoint = errors.New("无效的SMBIOS入口点")
	// ErrCorruptTable 表示遍历过程中遇到长度小于4的结构
	ErrCorruptTable = errors.New("SMBIOS结构表已损坏")
	// ErrTypeMismatch 表示解码器收到了错误类型的结构
	ErrTypeMismatch = errors.New("结构类型不匹配")
)
