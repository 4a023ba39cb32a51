package visitors

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/compression"
)

func TestDump(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&Dump{Predicate: FindHandlePredicate(0x0040), W: &out}).Run(testTable(t)))
	assert.Equal(t, testDIMM0, out.Bytes())
}

func TestDumpCompressed(t *testing.T) {
	var out bytes.Buffer
	xz := &compression.XZ{}
	require.NoError(t, (&Dump{Predicate: FindHandlePredicate(0x0001), Compressor: xz, W: &out}).Run(testTable(t)))

	raw, err := xz.Decode(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, testSystem, raw)
}

type closeBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closeBuffer) Close() error {
	b.closed = true
	return nil
}

func TestDumpClosesWriter(t *testing.T) {
	out := &closeBuffer{}
	require.NoError(t, (&Dump{Predicate: FindHandlePredicate(0x0040), W: out}).Run(testTable(t)))
	assert.True(t, out.closed)
	assert.Equal(t, testDIMM0, out.Bytes())

	// 找不到结构时也关闭
	out = &closeBuffer{}
	assert.Error(t, (&Dump{Predicate: FindHandlePredicate(0x1234), W: out}).Run(testTable(t)))
	assert.True(t, out.closed)
}

func TestDumpMissingHandle(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, (&Dump{Predicate: FindHandlePredicate(0x1234), W: &out}).Run(testTable(t)))
	assert.Zero(t, out.Len())
}

func TestDumpCLI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bios.bin")
	v, err := ParseCLI([]string{"dump", "0x0000", path})
	require.NoError(t, err)
	require.NoError(t, ExecuteCLI(testTable(t), v))
	// Run已经关闭文件
	assert.Error(t, v[0].(*Dump).W.(*os.File).Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testBIOS, got)
}
