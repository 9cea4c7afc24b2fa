// internal/logger/logger.go
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the rotated log file.
type Config struct {
	LogFile    string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
	Compress   bool
	Debug      bool
	// Format is FormatJSON (default) or FormatConsole.
	Format string
}

// New creates a TUI-safe logger: it only ever writes to the rotated file,
// never to stdout, so the alternate screen stays intact. The returned func flushes and closes the file.
func New(cfg Config) (*zap.Logger, func(), error) {
	if cfg.LogFile == "" {
		return nil, nil, fmt.Errorf("log file is required for TUI logger")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	level := zap.InfoLevel
	if cfg.Debug {
		level = zap.DebugLevel
	}

	encoder, err := encoderFor(cfg.Format)
	if err != nil {
		return nil, nil, err
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(rotator),
		level,
	)

	log := zap.New(core)
	closeFn := func() {
		_ = log.Sync()
		_ = rotator.Close()
	}
	return log, closeFn, nil
}
