package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log := New(Options{File: path, Production: true})
	log.Info("task created")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"task created"`)
}

func TestNew_ConsoleOnly(t *testing.T) {
	log := New(Options{})
	require.NotNil(t, log)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
