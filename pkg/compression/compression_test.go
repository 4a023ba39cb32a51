package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressorFromPath(t *testing.T) {
	assert.IsType(t, &XZ{}, CompressorFromPath("/tmp/DMI.xz"))
	assert.IsType(t, &XZ{}, CompressorFromPath("dump.XZ"))
	assert.Nil(t, CompressorFromPath("/sys/firmware/dmi/tables/DMI"))
}

func TestXZ(t *testing.T) {
	table := bytes.Repeat([]byte{0x00, 0x18, 0x00, 0x00, 'A', 'M', 'I', 0x00, 0x00}, 64)
	c := &XZ{}
	assert.Equal(t, "XZ", c.Name())

	encoded, err := c.Encode(table)
	require.NoError(t, err)
	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, table, decoded)

	_, err = c.Decode([]byte("plain bytes"))
	assert.Error(t, err)
}
