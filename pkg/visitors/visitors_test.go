package visitors

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios/smbiostest"
)

var (
	lenovoUUID = [16]byte{0x44, 0x45, 0x4C, 0x4C, 0x38, 0x00, 0x10, 0x46, 0x80, 0x52, 0xB4, 0xC0, 0x4F, 0x4E, 0x32, 0x32}

	testBIOS   = smbiostest.BIOSInformation(0x0000, 0xE800, 0x0F, "LENOVO", "N2HET66W (1.49 )", "05/23/2022")
	testSystem = smbiostest.SystemInformation(0x0001, lenovoUUID, "LENOVO", "20XW", "PF3ABCDE")
	testBoard  = smbiostest.Structure(2, 0x0002, []byte{1, 2}, "LENOVO", "20XWCTO1WW")
	testDIMM0  = smbiostest.MemoryDevice(0x0040, 0x4000, 3200, "ChannelA-DIMM0", "Samsung", "12345678", "None", "M471A2K43EB1-CWE")
	testDIMM1  = smbiostest.MemoryDevice(0x0041, 0x0000, 0, "ChannelB-DIMM0", "Unknown", "Unknown", "None", "Unknown")
)

func testTableBytes() []byte {
	return smbiostest.Table(testBIOS, testSystem, testBoard, testDIMM0, testDIMM1, smbiostest.EndOfTable(0xFEFF))
}

func testTable(t *testing.T) *smbios.Table {
	t.Helper()
	buf := testTableBytes()
	table, err := smbios.Open(smbiostest.EntryPoint64(3, 2, uint32(len(buf))), buf)
	require.NoError(t, err)
	require.NoError(t, table.Corrupt())
	return table
}
