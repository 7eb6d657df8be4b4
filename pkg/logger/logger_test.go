package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	err := Init(Options{Level: "debug", Service: "logger-test"}, zap.String("component", "test"))
	assert.NoError(t, err)
	assert.NotNil(t, Log)
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))

	first := Log
	assert.NoError(t, Init(Options{Level: "error"}))
	assert.Same(t, first, Log, "Init must only build the logger once")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("not-a-level"))
}

func TestConfigureEncoding(t *testing.T) {
	dev := configure(zapcore.InfoLevel, false)
	assert.Equal(t, "console", dev.Encoding)

	prod := configure(zapcore.WarnLevel, true)
	assert.Equal(t, "json", prod.Encoding)
	assert.Equal(t, zapcore.WarnLevel, prod.Level.Level())
}
