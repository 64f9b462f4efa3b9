package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesToDebugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, closeLog, err := newLogger(path)
	require.NoError(t, err)
	logger.Error("journal answer failed", "session", "s1")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "journal answer failed")
	assert.Contains(t, string(data), "session=s1")
}

func TestNewLogger_DiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger("")
	require.NoError(t, err)
	defer closeLog()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError), "nothing is written without a debug log")
}
