package smbios

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios/smbiostest"
)

func TestOpenBIOSScenario(t *testing.T) {
	const rawROMSize = 0x0F
	buf := smbiostest.Table(
		smbiostest.BIOSInformation(0x0000, 0xE800, rawROMSize, "American Megatrends Inc.", "F20", "03/15/2019"),
		smbiostest.EndOfTable(0x0001),
	)
	table, err := Open(smbiostest.EntryPoint32(2, 4, uint16(len(buf)), 2), buf)
	require.NoError(t, err)
	require.NoError(t, table.Corrupt())

	structures := table.Structures()
	require.Len(t, structures, 1)
	assert.Equal(t, TypeBIOSInformation, structures[0].Type)
	assert.Equal(t, uint8(0x12), structures[0].Length)

	e, err := table.Decode(structures[0])
	require.NoError(t, err)
	bios, ok := e.(*BIOSInformation)
	require.True(t, ok, "got %T", e)
	assert.Equal(t, fmt.Sprintf("%d bytes", (0x10000-uint32(rawROMSize))<<4), bios.ROMSizeString())
	assert.Equal(t, "American Megatrends Inc.", bios.Vendor())
}

func TestStructuresRestartable(t *testing.T) {
	table := NewTable(Version{2, 8}, minimalTable)
	first := table.Structures()
	first[0] = Header{}
	second := table.Structures()
	require.Len(t, second, 1)
	assert.Equal(t, TypeBIOSInformation, second[0].Type)
	assert.Equal(t, second, table.Structures())
}

func TestOpenKeepsPartialTable(t *testing.T) {
	buf := smbiostest.Table(
		smbiostest.BIOSInformation(0x0000, 0xF000, 0x0F, "Vendor", "1.0", "01/01/2020"),
		smbiostest.MemoryDevice(0x1100, 0x4000, 2666, "DIMM A1", "Samsung", "0001", "A1_AssetTag", "M393A2K40BB1"),
		[]byte{0x11, 0x00, 0x01, 0x11},
		smbiostest.MemoryDevice(0x1101, 0x4000, 2666, "DIMM A2", "Samsung", "0002", "A2_AssetTag", "M393A2K40BB1"),
		smbiostest.EndOfTable(0xFEFF),
	)
	table, err := Open(smbiostest.EntryPoint32(2, 8, uint16(len(buf)), 0), buf)
	require.NoError(t, err)
	assert.ErrorIs(t, table.Corrupt(), ErrCorruptTable)
	assert.Len(t, table.Structures(), 2)
}

func TestOpenTableLengthBound(t *testing.T) {
	bios := smbiostest.BIOSInformation(0x0000, 0xF000, 0x0F, "Vendor", "1.0", "01/01/2020")
	buf := smbiostest.Table(
		bios,
		smbiostest.MemoryDevice(0x1100, 0x4000, 2666, "DIMM A1", "Samsung", "0001", "A1", "PN"),
		smbiostest.EndOfTable(0xFEFF),
	)
	table, err := Open(smbiostest.EntryPoint32(2, 8, uint16(len(bios)), 0), buf)
	require.NoError(t, err)
	assert.Len(t, table.Structures(), 1)
	assert.Equal(t, bios, table.Bytes())

	// 64位入口点的长度只是上限
	table, err = Open(smbiostest.EntryPoint64(3, 2, 0x10000), buf)
	require.NoError(t, err)
	assert.Len(t, table.Structures(), 2)
	assert.Equal(t, Version{3, 2}, table.Version())
}

func TestOpenStructureCountBound(t *testing.T) {
	buf := smbiostest.Table(
		smbiostest.BIOSInformation(0x0000, 0xF000, 0x0F, "Vendor", "1.0", "01/01/2020"),
		smbiostest.MemoryDevice(0x1100, 0x4000, 2666, "DIMM A1", "Samsung", "0001", "A1", "PN"),
		smbiostest.EndOfTable(0xFEFF),
	)
	table, err := Open(smbiostest.EntryPoint32(2, 8, uint16(len(buf)), 1), buf)
	require.NoError(t, err)
	assert.Len(t, table.Structures(), 1)
}

func TestTableLookups(t *testing.T) {
	buf := smbiostest.Table(
		smbiostest.BIOSInformation(0x0000, 0xF000, 0x0F, "Vendor", "1.0", "01/01/2020"),
		smbiostest.Structure(2, 0x0200, make([]byte, 4), "Board"),
		smbiostest.MemoryDevice(0x1100, 0x4000, 2666, "DIMM A1", "Samsung", "0001", "A1", "PN"),
		smbiostest.MemoryDevice(0x1101, 0x0000, 0, "DIMM A2", "Empty", "None", "A2", "None"),
		smbiostest.EndOfTable(0xFEFF),
	)
	table := NewTable(Version{2, 8}, buf)
	assert.Nil(t, table.EntryPoint())

	assert.Len(t, table.Find(TypeMemoryDevice), 2)
	assert.Empty(t, table.Find(TypeSystemInformation))

	h, ok := table.Handle(0x0200)
	require.True(t, ok)
	assert.Equal(t, TypeBaseboardInformation, h.Type)
	_, ok = table.Handle(0x9999)
	assert.False(t, ok)

	entries, err := table.Entries()
	require.NoError(t, err)
	// 类型2没有解码器，被跳过
	require.Len(t, entries, 3)
	assert.IsType(t, &BIOSInformation{}, entries[0])
	assert.IsType(t, &MemoryDevice{}, entries[1])
	assert.Equal(t, "No Module Installed", entries[2].(*MemoryDevice).DeviceSizeString())
}

type countingVisitor struct {
	types []StructureType
}

func (v *countingVisitor) Run(t *Table) error {
	return t.Apply(v)
}

func (v *countingVisitor) Visit(e Entry) error {
	v.types = append(v.types, e.Type())
	return nil
}

func TestApply(t *testing.T) {
	buf := smbiostest.Table(
		smbiostest.BIOSInformation(0x0000, 0xF000, 0x0F, "Vendor", "1.0", "01/01/2020"),
		smbiostest.Structure(2, 0x0200, make([]byte, 4), "Board"),
		smbiostest.EndOfTable(0xFEFF),
	)
	v := &countingVisitor{}
	require.NoError(t, v.Run(NewTable(Version{2, 8}, buf)))
	assert.Equal(t, []StructureType{TypeBIOSInformation, TypeBaseboardInformation}, v.types)
}
