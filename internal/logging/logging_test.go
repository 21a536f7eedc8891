package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/filament-export/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logging.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo)

	logger.Info("exported profile", "profile", "PLA Basic")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "exported profile")
	assert.Contains(t, out, "profile=\"PLA Basic\"")
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "\x1b[")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "filament-export.log")

	logger, closer, err := logging.OpenFile(path, slog.LevelDebug)
	require.NoError(t, err)
	logger.Debug("refreshed", "count", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "refreshed")
	assert.Contains(t, string(data), "count=2")
}
