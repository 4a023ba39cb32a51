package guid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dmidecode 对该字节序列输出 4C4C4544-0038-4610-8052-B4C04F4E3232
var smbiosBytes = GUID{
	0x44, 0x45, 0x4C, 0x4C, 0x38, 0x00, 0x10, 0x46,
	0x80, 0x52, 0xB4, 0xC0, 0x4F, 0x4E, 0x32, 0x32,
}

func TestString(t *testing.T) {
	assert.Equal(t, "4C4C4544-0038-4610-8052-B4C04F4E3232", smbiosBytes.String())
	assert.Equal(t, "4c4c4544-0038-4610-8052-b4c04f4e3232", smbiosBytes.UUID().String())
}

func TestParse(t *testing.T) {
	g, err := Parse("4c4c4544-0038-4610-8052-b4c04f4e3232")
	require.NoError(t, err)
	assert.Equal(t, smbiosBytes, *g)

	_, err = Parse("not-a-guid")
	assert.Error(t, err)
}
