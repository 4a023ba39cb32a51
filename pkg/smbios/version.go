package smbios

import "fmt"

// Version 是结构表声明的SMBIOS版本
type Version struct {
	Major uint16
	Minor uint16
}

// Compare 按先主版本后次版本的顺序比较，返回-1、0或1
func (v Version) Compare(o Version) int {
	switch {
	case v.Major < o.Major:
		return -1
	case v.Major > o.Major:
		return 1
	case v.Minor < o.Minor:
		return -1
	case v.Minor > o.Minor:
		return 1
	}
	return 0
}

// Less 在v早于o时返回true
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Greater 在v晚于o时返回true
func (v Version) Greater(o Version) bool {
	return v.Compare(o) > 0
}

// AtLeast 在v不早于o时返回true
func (v Version) AtLeast(o Version) bool {
	return v.Compare(o) >= 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
