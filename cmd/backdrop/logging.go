package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/backdrop/config"
)

const (
	logDir      = "logs"
	logFileName = "backdrop.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging opens the log file and builds a logger writing to it
// The screen owns stdout, so logging is off unless debug is set or a file is configured
// A nil file is returned when logging is off
func setupLogging(cfg config.LoggingConfig, debug bool) (*zap.Logger, *os.File, error) {
	if !debug && cfg.File == "" {
		return zap.NewNop(), nil, nil
	}

	path := cfg.File
	if path == "" {
		path = filepath.Join(logDir, logFileName)
	}
	limit := int64(cfg.MaxSizeMB) * 1024 * 1024
	if limit <= 0 {
		limit = maxLogSize
	}

	f, err := openLogFile(path, limit)
	if err != nil {
		return nil, nil, err
	}
	if debug {
		cfg.Level = "debug"
	}
	return newLogger(cfg, zapcore.AddSync(f)), f, nil
}

// openLogFile rotates path aside with a timestamp suffix when it exceeds limit, then opens it for append
func openLogFile(path string, limit int64) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > limit {
		ext := filepath.Ext(path)
		rotated := strings.TrimSuffix(path, ext) + "_" + time.Now().Format("20060102_150405") + ext
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

// newLogger builds a json or console logger on sink; an unknown level falls back to info
func newLogger(cfg config.LoggingConfig, sink zapcore.WriteSyncer) *zap.Logger {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var (
		enc  zapcore.Encoder
		opts []zap.Option
	)
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		opts = append(opts, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		ec.ConsoleSeparator = "  "
		enc = zapcore.NewConsoleEncoder(ec)
	}

	return zap.New(zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(level)), opts...)
}
