package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tangzhangming/tracy/internal/config"
)

func TestNewWriterProduction(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(config.LogConfig{Level: "warn"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("deprecated", zap.String("old", "stack"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"deprecated"`)
	assert.Contains(t, out, `"old":"stack"`)
}

func TestNewWriterDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWriter(config.LogConfig{Level: "debug", Development: true}, &buf)
	require.NoError(t, err)

	logger.Debug("expanding")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.True(t, strings.Contains(out, "DEBUG"), "console encoder prints capitalized levels: %q", out)
	assert.Contains(t, out, "expanding")
}

func TestInvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	require.Error(t, err)

	_, err = NewWriter(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewWritesToOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracy.log")
	logger, err := New(config.LogConfig{Level: "info", Output: path})
	require.NoError(t, err)

	logger.Info("expanded", zap.Int("attach_points", 2))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"expanded"`)
	assert.Contains(t, string(data), `"attach_points":2`)
}

func TestNewDefault(t *testing.T) {
	logger, err := New(config.Default().Log)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
