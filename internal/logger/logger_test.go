package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))
	t.Cleanup(func() {
		Quiet = false
		Replace(newDefault())
	})
	return logs
}

func TestQuiet(t *testing.T) {
	logs := observe(t)

	Info("server %s", "1.2.3.4")
	Quiet = true
	Info("hidden")
	Debug("hidden")
	Warn("warn %d", 1)
	Error("error %d", 2)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "server 1.2.3.4", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "error 2", entries[2].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestInit_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "timentp.log")
	require.NoError(t, Init(Options{Level: "info", File: p}))
	t.Cleanup(func() { Replace(newDefault()) })

	Error("written to %s", "file")
	Sync()

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestDefaultLoggerName(t *testing.T) {
	assert.Equal(t, "timentp", get().Desugar().Name())
	observe(t)
}

func TestRestoredLoggerName(t *testing.T) {
	assert.Equal(t, "timentp", get().Desugar().Name())
}

func TestInit_BadLevel(t *testing.T) {
	assert.Error(t, Init(Options{Level: "loud"}))
}
