package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.Mutex
	initOnce sync.Once
	logger   *zap.Logger
	exitFunc = os.Exit
)

// L returns the shared application logger, initializing it on first use.
func L() *zap.Logger {
	initOnce.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		if logger == nil {
			logger = build(os.Getenv("ZENITH_LOG_LEVEL"), "stderr")
		}
	})
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Configure replaces the shared logger. An empty level falls back to
// ZENITH_LOG_LEVEL; an empty path keeps stderr. The TUI points this at a file
// so log lines do not tear the alt screen.
func Configure(level, path string) {
	if level == "" {
		level = os.Getenv("ZENITH_LOG_LEVEL")
	}
	if path == "" {
		path = "stderr"
	}
	next := build(level, path)
	initOnce.Do(func() {})
	mu.Lock()
	prev := logger
	logger = next
	mu.Unlock()
	if prev != nil {
		_ = prev.Sync()
	}
}

// Sync flushes any buffered log entries
func Sync() error {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l != nil {
		return l.Sync()
	}
	return nil
}

func build(level, path string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	format := strings.ToLower(os.Getenv("ZENITH_LOG_FORMAT"))
	if format == "json" || format == "structured" {
		config.Encoding = "json"
	} else {
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if path == "stderr" {
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}

	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{"stderr"}

	l, err := config.Build()
	if err != nil {
		l, _ = zap.NewDevelopment()
		l.Warn("log output unavailable, using stderr", zap.String("path", path), zap.Error(err))
	}
	return l
}

func parseLevel(value string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Fatal logs the message at error level and exits with status 1.
func Fatal(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
	_ = Sync()
	exitFunc(1)
}
