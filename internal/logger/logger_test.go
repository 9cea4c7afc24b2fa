package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "calc.log")

	log, closeFn, err := New(Config{LogFile: path, MaxSize: 1})
	require.NoError(t, err)

	log.Named("state").Info("State changed", zap.Strings("keys", []string{"tabData"}))
	log.Debug("hidden at info level")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"State changed"`)
	assert.Contains(t, lines[0], `"logger":"state"`)
	assert.Contains(t, lines[0], `"keys":["tabData"]`)
}

func TestNewDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")

	log, closeFn, err := New(Config{LogFile: path, MaxSize: 1, Debug: true})
	require.NoError(t, err)
	log.Debug("visible")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestNewRequiresFile(t *testing.T) {
	_, _, err := New(Config{})
	assert.Error(t, err)
}

func TestNewConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")

	log, closeFn, err := New(Config{LogFile: path, MaxSize: 1, Format: FormatConsole})
	require.NoError(t, err)
	log.Named("storage").Warn("Storage unavailable")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, "[WARN]")
	assert.Contains(t, line, "storage")
	assert.Contains(t, line, "Storage unavailable")
	assert.NotContains(t, line, `"msg"`)
}

func TestNewUnknownFormat(t *testing.T) {
	_, _, err := New(Config{LogFile: filepath.Join(t.TempDir(), "calc.log"), Format: "xml"})
	assert.Error(t, err)
}
