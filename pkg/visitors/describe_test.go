package visitors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios/smbiostest"
)

func TestDescribe(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&Describe{W: &out}).Run(testTable(t)))

	s := out.String()
	assert.Contains(t, s, "SMBIOS 64-bit Entry Point\n\tAnchor: _SM3_\n")
	assert.Contains(t, s, fmt.Sprintf("SMBIOS 3.2 present.\n5 structures occupying %d bytes.\n\n", len(testTableBytes())))
	assert.Contains(t, s, "Handle 0x0040, DMI type 17, 28 bytes\nMemory Device\n\tArray Handle: 0x1000\n")
	assert.Contains(t, s, "Handle 0x0001, DMI type 1, 27 bytes\nSystem Information\n\tManufacturer: LENOVO\n")
	assert.Contains(t, s, "\tUUID: 4C4C4544-0038-4610-8052-B4C04F4E3232\n")
	assert.NotContains(t, s, "truncated")
}

func TestDescribeTruncated(t *testing.T) {
	buf := append(smbiostest.Table(testBIOS), 0x11, 0x02, 0x00, 0x00, 0x00, 0x00)
	var out bytes.Buffer
	require.NoError(t, (&Describe{W: &out}).Run(smbios.NewTable(smbios.Version{Major: 2, Minor: 4}, buf)))

	s := out.String()
	assert.NotContains(t, s, "Entry Point")
	assert.Contains(t, s, "1 structures occupying")
	assert.Contains(t, s, "Table is truncated: ")
}
