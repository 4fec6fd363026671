package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	if l := New(false); l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("quiet logger has debug enabled")
	}
	l := New(true)
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger has debug disabled")
	}
	_ = l.Sync()
}
