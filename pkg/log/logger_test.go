package log

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Warnf("table truncated at %#x", 0x40)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "table truncated at 0x40")

	buf.Reset()
	logger.Debugf("hidden")
	assert.Empty(t, buf.String())
}

func TestSetLevel(t *testing.T) {
	old := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(old)

	require.NoError(t, SetLevel("debug"))
	var buf bytes.Buffer
	New(&buf).Debugf("walking %d structures", 3)
	assert.Contains(t, buf.String(), "walking 3 structures")

	assert.Error(t, SetLevel("loud"))
}
