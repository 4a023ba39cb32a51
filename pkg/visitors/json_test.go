package visitors

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

func checkTableView(t *testing.T, view TableView) {
	t.Helper()
	assert.Equal(t, "SMBIOS 64-bit", view.Anchor)
	assert.Equal(t, "3.2", view.Version)
	assert.Equal(t, len(testTableBytes()), view.Length)
	assert.Empty(t, view.Corrupt)
	require.Len(t, view.Structures, 5)

	dimm := view.Structures[3]
	assert.Equal(t, "0x0040", dimm.Handle)
	assert.Equal(t, uint8(17), dimm.Type)
	assert.Equal(t, "Memory Device", dimm.Name)
	assert.Equal(t, []string{"2.1", "2.3", "2.6"}, dimm.Tiers)
	assert.Contains(t, dimm.Fields, smbios.Field{Label: "Size", Value: "16384 MB"})

	board := view.Structures[2]
	assert.Equal(t, "Baseboard Information", board.Name)
	assert.Empty(t, board.Tiers)
	assert.Equal(t, "Header and Data", board.Fields[0].Label)
}

func TestJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&JSON{W: &out}).Run(testTable(t)))

	var view TableView
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	checkTableView(t, view)
	assert.Contains(t, out.String(), "\n\t\"structures\": [")
}

func TestJSONRunTwice(t *testing.T) {
	var out bytes.Buffer
	v := &JSON{W: &out}
	table := testTable(t)
	require.NoError(t, v.Run(table))
	first := out.String()
	out.Reset()
	require.NoError(t, v.Run(table))
	assert.Equal(t, first, out.String())
}

func TestYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&YAML{W: &out}).Run(testTable(t)))

	var view TableView
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &view))
	checkTableView(t, view)
	assert.Contains(t, out.String(), "version: \"3.2\"\n")
}
