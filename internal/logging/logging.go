// Package logging builds the zap loggers used by the tripcost commands.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds a console logger at the given level writing to outputs.
// An empty outputs list writes to stderr, keeping stdout for results.
func Init(level string, outputs ...string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	cfg := &zap.Config{
		Level:    lvl,
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build(zap.AddStacktrace(zap.DPanicLevel))
}

// Install builds a logger and makes it the zap global. The returned func
// flushes it and restores the previous global.
func Install(level string, outputs ...string) (func(), error) {
	logger, err := Init(level, outputs...)
	if err != nil {
		return func() {}, err
	}
	undo := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		undo()
	}, nil
}
