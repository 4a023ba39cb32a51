package visitors

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

// Summary 打印固件、系统和内存的概要
type Summary struct {
	W io.Writer

	bios    []*smbios.BIOSInformation
	systems []*smbios.SystemInformation
	memory  []*smbios.MemoryDevice
}

func (v *Summary) Run(t *smbios.Table) error {
	v.bios, v.systems, v.memory = nil, nil, nil
	if err := t.Apply(v); err != nil {
		return err
	}

	fmt.Fprintf(v.W, "SMBIOS %s, %d structures\n", t.Version(), len(t.Structures()))
	for _, b := range v.bios {
		fmt.Fprintf(v.W, "BIOS: %s %s (%s)\n", b.Vendor(), b.BIOSVersion(), b.ReleaseDate())
	}
	for _, s := range v.systems {
		fmt.Fprintf(v.W, "System: %s %s\n", s.Manufacturer(), s.ProductName())
		fmt.Fprintf(v.W, "Serial Number: %s\n", s.SerialNumber())
		fmt.Fprintf(v.W, "UUID: %s\n", s.UUIDString())
	}

	var total uint64
	installed := 0
	for _, m := range v.memory {
		if size := m.DeviceSizeBytes(); size > 0 {
			total += size
			installed++
		}
	}
	fmt.Fprintf(v.W, "Memory: %s in %d of %d slots\n", humanize.IBytes(total), installed, len(v.memory))
	for _, m := range v.memory {
		size := m.DeviceSizeBytes()
		if size == 0 {
			continue
		}
		fmt.Fprintf(v.W, "\t%s: %s %s %s\n", m.DeviceLocator(), humanize.IBytes(size), m.DeviceType(), m.SpeedString())
	}
	return nil
}

func (v *Summary) Visit(e smbios.Entry) error {
	switch e := e.(type) {
	case *smbios.BIOSInformation:
		v.bios = append(v.bios, e)
	case *smbios.SystemInformation:
		v.systems = append(v.systems, e)
	case *smbios.MemoryDevice:
		v.memory = append(v.memory, e)
	}
	return nil
}

func init() {
	RegisterCLI("summary", "打印BIOS、系统和内存容量概要", 0, func(args []string) (smbios.Visitor, error) {
		return &Summary{
			W: os.Stdout,
		}, nil
	})
}
