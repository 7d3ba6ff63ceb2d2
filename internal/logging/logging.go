// internal/logging/logging.go
// Package logging provides the process-wide logger used by every command.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu          sync.Mutex
	logFile     *os.File
	logger      = zap.NewNop().Sugar()
	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

var consoleEncoder = zapcore.EncoderConfig{
	TimeKey:       "time",
	LevelKey:      "level",
	MessageKey:    "msg",
	CallerKey:     "caller",
	StacktraceKey: "stacktrace",
	EncodeLevel:   zapcore.CapitalLevelEncoder,
	EncodeTime:    zapcore.RFC3339TimeEncoder,
	EncodeCaller:  zapcore.ShortCallerEncoder,
}

// Options controls where log output goes.
type Options struct {
	// Path is an optional log file, created with its parent directories.
	Path string
	// Console also writes to Stderr. The TUI turns this off.
	Console bool
	// Level is a zap level name such as "debug" or "warn". Empty keeps the current level.
	Level string
}

// Init writes logs to stderr and, when logPath is set, to that file as well.
func Init(logPath string) error {
	return InitWithOptions(Options{Path: logPath, Console: true})
}

// InitWithOptions replaces the process logger. A previously opened log file is closed.
func InitWithOptions(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if opts.Level != "" {
		setLevel(opts.Level)
	}

	var writers []io.Writer
	if opts.Console {
		writers = append(writers, os.Stderr)
	}
	if opts.Path != "" {
		if dir := filepath.Dir(opts.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}
	if len(writers) == 0 {
		logger = zap.NewNop().Sugar()
		return nil
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoder),
		zapcore.AddSync(io.MultiWriter(writers...)),
		atomicLevel,
	)
	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zap.ErrorLevel)).Sugar()
	return nil
}

// Close flushes the logger and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
	logger = zap.NewNop().Sugar()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// SetLevel changes the minimum level. Unknown names are ignored.
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	setLevel(level)
}

func setLevel(level string) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return
	}
	atomicLevel.SetLevel(lvl)
}

// Level returns the current minimum level name.
func Level() string {
	return atomicLevel.Level().String()
}

func current() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// LogEvent records an informational event.
func LogEvent(format string, args ...any) {
	current().Infof(format, args...)
}

// Debugf records a debug message.
func Debugf(format string, args ...any) {
	current().Debugf(format, args...)
}

// Warnf records a warning.
func Warnf(format string, args ...any) {
	current().Warnf(format, args...)
}

// Errorf records an error.
func Errorf(format string, args ...any) {
	current().Errorf(format, args...)
}

// Sugar exposes the underlying logger for structured key/value logging.
func Sugar() *zap.SugaredLogger {
	return current()
}
