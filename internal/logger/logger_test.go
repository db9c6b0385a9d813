package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.log")

	l, err := New("test-role", path)
	require.NoError(t, err)
	l.Info().Str("path", "/books").Msg("navigate")
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "/books", entry["path"])
	assert.Equal(t, "navigate", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNew_SetsGlobalLevelAndCallerField(t *testing.T) {
	l, err := New("level-role", filepath.Join(t.TempDir(), "folio.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter("folio", &buf).Component("fetch")

	l.Debug().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fetch", entry["component"])
	assert.Equal(t, "folio", entry["role"])
}

func TestComponent_NilReceiverIsNop(t *testing.T) {
	var l *Logger
	child := l.Component("x")
	require.NotNil(t, child)
	assert.NoError(t, l.Close())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
	assert.NoError(t, l.Close())
}
