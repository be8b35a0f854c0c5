package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-leave/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "api.log")

	l, err := logger.New(logger.Config{Level: "debug", OutputPath: path, Format: "json"})
	assert.NoError(t, err)

	l.Info("leave request created")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "leave request created")
	assert.Contains(t, string(data), `"timestamp"`)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := logger.New(logger.Config{Level: "chatty", Format: "console"})
	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}
