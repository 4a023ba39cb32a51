package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios/smbiostest"
)

var minimalTable = smbiostest.Table(
	smbiostest.BIOSInformation(0x0000, 0xE800, 0x0F, "Vendor", "1.0", "01/01/2020"),
	smbiostest.EndOfTable(0x0001),
)

func TestOpenEntryPoint32Version(t *testing.T) {
	for _, v := range []Version{{2, 1}, {2, 4}, {2, 7}, {2, 8}, {3, 0}} {
		ep := smbiostest.EntryPoint32(uint8(v.Major), uint8(v.Minor), uint16(len(minimalTable)), 2)
		table, err := Open(ep, minimalTable)
		require.NoError(t, err, v.String())
		assert.Equal(t, v, table.Version())
		assert.Equal(t, AnchorSMBios32, table.EntryPoint().Anchor())
		assert.Equal(t, uint64(smbiostest.TableAddress), table.EntryPoint().TableAddress())
		assert.Equal(t, 2, table.EntryPoint().StructureCount())
	}
}

func TestOpenRejectsChecksumDelta(t *testing.T) {
	builders := map[string]func() []byte{
		"32-bit": func() []byte { return smbiostest.EntryPoint32(2, 8, uint16(len(minimalTable)), 2) },
		"64-bit": func() []byte { return smbiostest.EntryPoint64(3, 2, uint32(len(minimalTable))) },
		"legacy": func() []byte { return smbiostest.EntryPointLegacy(0x21, uint16(len(minimalTable)), 2) },
	}
	for name, build := range builders {
		_, err := Open(build(), minimalTable)
		require.NoError(t, err, name)

		for delta := 1; delta < 256; delta++ {
			ep := build()
			// 校验和字段所在的偏移量不同，改动最后一个字节对三种入口点都有效
			ep[len(ep)-1] += uint8(delta)
			_, err := Open(ep, minimalTable)
			require.ErrorIs(t, err, ErrInvalidEntryPoint, "%s delta %d", name, delta)
		}
	}
}

func TestEntryPoint32IntermediateAnchor(t *testing.T) {
	ep := smbiostest.EntryPoint32(2, 8, uint16(len(minimalTable)), 2)
	ep[0x10] = 'X'
	ep[0x15] += '_' - 'X'
	ep[0x04] = 0
	ep[0x04] = -Checksum8(ep)
	_, err := NewEntryPoint32(ep)
	assert.ErrorIs(t, err, ErrInvalidEntryPoint)
}

func TestEntryPoint32IntermediateChecksum(t *testing.T) {
	ep := smbiostest.EntryPoint32(2, 8, uint16(len(minimalTable)), 2)
	// 外层和保持为0，只破坏中间校验和
	ep[0x15]++
	ep[0x04]--
	require.Zero(t, Checksum8(ep))
	_, err := NewEntryPoint32(ep)
	assert.ErrorIs(t, err, ErrInvalidEntryPoint)
}

func TestEntryPointTooShort(t *testing.T) {
	_, err := NewEntryPoint32(smbiostest.EntryPoint32(2, 8, 0, 0)[:0x10])
	assert.ErrorIs(t, err, ErrInvalidEntryPoint)
	_, err = NewEntryPoint64([]byte("_SM3_"))
	assert.ErrorIs(t, err, ErrInvalidEntryPoint)
	_, err = Open(nil, minimalTable)
	assert.ErrorIs(t, err, ErrInvalidEntryPoint)
}

func TestParseEntryPointScan(t *testing.T) {
	buf := make([]byte, 64)
	copy(buf[32:], smbiostest.EntryPoint64(3, 2, 0x1000))
	ep, err := ParseEntryPoint(buf)
	require.NoError(t, err)
	assert.Equal(t, AnchorSMBios64, ep.Anchor())
	assert.Equal(t, Version{3, 2}, ep.Version())
	assert.Equal(t, uint32(0x1000), ep.TableLength())
	assert.Zero(t, ep.StructureCount())
}

func TestParseEntryPointScanSkipsIntermediateAnchor(t *testing.T) {
	ep := smbiostest.EntryPoint32(2, 8, 0x100, 2)
	ep[0x04]++
	buf := make([]byte, 16, 64)
	buf = append(buf, ep...)
	buf = append(buf, make([]byte, 64-len(buf))...)

	// 中间区域本身是一个合法的旧版入口点，但它属于被拒绝的32位入口点
	_, err := NewEntryPointLegacy(buf[16+0x10:])
	require.NoError(t, err)

	_, err = ParseEntryPoint(buf)
	assert.ErrorIs(t, err, ErrInvalidEntryPoint)
}

func TestParseEntryPointNoAnchor(t *testing.T) {
	_, err := ParseEntryPoint(make([]byte, 256))
	assert.ErrorIs(t, err, ErrInvalidEntryPoint)
}

func TestEntryPointLegacyVersion(t *testing.T) {
	ep, err := NewEntryPointLegacy(smbiostest.EntryPointLegacy(0x21, 0x80, 4))
	require.NoError(t, err)
	assert.Equal(t, Version{2, 1}, ep.Version())
	assert.Equal(t, uint32(0x80), ep.TableLength())
	assert.Equal(t, 4, ep.StructureCount())
}

func TestOpenEntryPointLegacyZeroRevision(t *testing.T) {
	table, err := Open(smbiostest.EntryPointLegacy(0x00, uint16(len(minimalTable)), 2), minimalTable)
	require.NoError(t, err)
	assert.Equal(t, Version{2, 0}, table.Version())

	hs := table.Find(TypeBIOSInformation)
	require.Len(t, hs, 1)
	e, err := table.Decode(hs[0])
	require.NoError(t, err)
	b, ok := e.(*BIOSInformation)
	require.True(t, ok)
	assert.Equal(t, []Version{{2, 0}}, b.Tiers())
	assert.Equal(t, "Vendor", b.Vendor())
}

func TestEntryPointDescribe(t *testing.T) {
	ep, err := NewEntryPoint32(smbiostest.EntryPoint32(2, 8, 0x0C00, 42))
	require.NoError(t, err)
	d := ep.Describe()
	assert.Contains(t, d, "SMBIOS 32-bit Entry Point")
	assert.Contains(t, d, "\tSMBIOS Version: 2.8")
	assert.Contains(t, d, "\tTable Length: 3072 bytes")
	assert.Contains(t, d, "\tNumber Of Structures: 42")
	assert.Contains(t, d, "\tIntermediate Anchor: _DMI_")

	ep64, err := NewEntryPoint64(smbiostest.EntryPoint64(3, 2, 0x2000))
	require.NoError(t, err)
	assert.Contains(t, ep64.Describe(), "\tTable Maximum Size: 8192 bytes")
}
