package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a file-backed zap logger from the log settings.
// With level "none" or no destination it returns a no-op logger. The
// returned cleanup flushes and closes the file and is safe to call on
// the no-op path too.
func (c LogConfig) NewLogger() (*zap.Logger, func(), error) {
	if c.Level == "" || c.Level == "none" || c.File == "" {
		return zap.NewNop(), func() {}, nil
	}

	level := zapcore.InfoLevel
	if c.Level == "debug" {
		level = zapcore.DebugLevel
	}

	flags := os.O_CREATE | os.O_WRONLY
	if c.Mode == "overwrite" {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(c.File, flags, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("config: open log file: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(f),
		zap.NewAtomicLevelAt(level),
	)

	logger := zap.New(core)
	cleanup := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, cleanup, nil
}
