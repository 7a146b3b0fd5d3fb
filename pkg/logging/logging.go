// Package logging builds the diagnostic logger used by the hooks.
//
// Hooks talk to Claude Code through their exit code and standard streams, so
// diagnostics are off unless explicitly requested.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a debug-level console logger writing to w when enabled, and a
// no-op logger otherwise.
func New(w io.Writer, enabled bool) *zap.SugaredLogger {
	if !enabled || w == nil {
		return zap.NewNop().Sugar()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core).Sugar()
}
