package iologger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/seqsel/pkg/config"
	"github.com/gnames/seqsel/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "info", Format: "text"})
	logger.Info("test message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "level=INFO")
	assert.Contains(t, output, "run_id="+RunID)
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "info", Format: "json"})
	logger.Info("test message", "key", "value")

	var rec map[string]any
	err := json.Unmarshal(buf.Bytes(), &rec)
	require.NoError(t, err)
	assert.Equal(t, "test message", rec["msg"])
	assert.Equal(t, "value", rec["key"])
	assert.Equal(t, RunID, rec["run_id"])
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "warn", Format: "text"})
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		level slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.level, parseLevel(v.input), v.input)
	}
}

// TestInit_File verifies log file is created in the log directory.
func TestInit_File(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	logDir := t.TempDir()
	err := Init(logDir, config.LogConfig{
		Level: "info", Format: "json", Destination: "file",
	})
	require.NoError(t, err)

	slog.Info("written to file")
	content, err := os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
}

// TestInit_MissingDir verifies a typed error for an unusable log
// directory.
func TestInit_MissingDir(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "absent")
	err := Init(logDir, config.LogConfig{Destination: "file"})
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}
