package logutils

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _zapLogger atomic.Pointer[zap.Logger]

// ZapLogger returns the process-wide logger. It discards everything until
// SetZapLogger is called.
func ZapLogger() *zap.Logger {
	if logger := _zapLogger.Load(); logger != nil {
		return logger
	}
	_zapLogger.CompareAndSwap(nil, zap.NewNop())
	return _zapLogger.Load()
}

// SetZapLogger replaces the process-wide logger. It is safe to call while
// other goroutines log.
func SetZapLogger(logger *zap.Logger) {
	_zapLogger.Store(logger)
}

// ParseLevel converts a config level name ("ERROR", "WARN", "INFO", "DEBUG")
// into a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return lvl, errors.Wrapf(err, "invalid log level %q", level)
	}
	return lvl, nil
}

// NewZapLogger creates a JSON logger writing to a rotated file, or to stderr
// when opts.Filename is empty.
func NewZapLogger(level string, opts FileOptions) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var syncer zapcore.WriteSyncer
	if opts.Filename != "" {
		syncer = ZapSyncerWithRotation(opts)
	} else {
		syncer = zapcore.Lock(os.Stderr)
	}

	return newZapLogger(lvl, syncer), nil
}

func newZapLogger(level zapcore.Level, syncer zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), syncer, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller())
}
