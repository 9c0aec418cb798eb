package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger emits structured JSON lines keyed by action name.
type Logger struct {
	service string
	zl      *zap.Logger
}

func New(service string) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	if os.Getenv("LOG_DEBUG") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		zl = zap.NewNop()
	}
	return &Logger{service: service, zl: zl}
}

// Nop returns a logger that discards everything, for tests.
func Nop() *Logger { return &Logger{zl: zap.NewNop()} }

func (l *Logger) fields(extra map[string]any) []zap.Field {
	fs := []zap.Field{zap.String("service", l.service), zap.String("hostname", hostname())}
	for k, v := range extra {
		fs = append(fs, zap.Any(k, v))
	}
	return fs
}

func (l *Logger) Info(action string, fields map[string]any) {
	l.zl.Info(action, l.fields(fields)...)
}

func (l *Logger) Debug(action string, fields map[string]any) {
	l.zl.Debug(action, l.fields(fields)...)
}

func (l *Logger) Warn(action string, err error, fields map[string]any) {
	fs := l.fields(fields)
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	l.zl.Warn(action, fs...)
}

func (l *Logger) Error(action string, err error, fields map[string]any) {
	fs := l.fields(fields)
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	l.zl.Error(action, fs...)
}

func (l *Logger) Sync() { _ = l.zl.Sync() }

func hostname() string { h, _ := os.Hostname(); return h }
