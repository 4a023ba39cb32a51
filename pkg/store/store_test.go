package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "smbios.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	collected := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		Anchor:      "SMBIOS 3.x",
		Version:     "3.2",
		TableLength: 0x1234,
		CollectedAt: collected,
		Structures: []Structure{
			{Handle: 0x0000, Type: 0, Name: "BIOS Information", Raw: []byte{0, 0x12, 0, 0}, Fields: `[{"label":"Vendor","value":"Dell Inc."}]`},
			{Handle: 0x1100, Type: 17, Name: "Memory Device", Raw: []byte{17, 0x28, 0, 0x11}},
			{Handle: 0x1101, Type: 17, Name: "Memory Device", Raw: []byte{17, 0x28, 1, 0x11}},
		},
	}
	id, err := s.SaveSnapshot(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, id, snap.ID)

	got, err := s.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "SMBIOS 3.x", got.Anchor)
	assert.Equal(t, "3.2", got.Version)
	assert.Equal(t, 0x1234, got.TableLength)
	assert.Equal(t, 3, got.StructureCount)
	assert.True(t, collected.Equal(got.CollectedAt))

	all, err := s.Structures(ctx, id, nil)
	require.NoError(t, err)
	assert.Equal(t, snap.Structures, all)

	memType := uint8(17)
	mem, err := s.Structures(ctx, id, &memType)
	require.NoError(t, err)
	require.Len(t, mem, 2)
	assert.Equal(t, uint16(0x1101), mem[1].Handle)
}

func TestDeleteSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	id, err := s.SaveSnapshot(ctx, &Snapshot{Anchor: "SMBIOS 2.1", Version: "2.8", Structures: []Structure{{Handle: 1, Raw: []byte{1}}}})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Snapshot(ctx, id)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	rest, err := s.Structures(ctx, id, nil)
	require.NoError(t, err)
	assert.Empty(t, rest)

	assert.ErrorIs(t, s.Delete(ctx, id), sql.ErrNoRows)
}
