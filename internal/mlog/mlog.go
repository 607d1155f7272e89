// Package mlog wraps zap behind a small structured-logging interface, the
// way the teacher's pkg/mzap does: callers attach fields with WithFields
// and get back a logger carrying them, instead of passing a raw *zap.Logger
// around and threading field lists through every call site.
package mlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger interface threaded explicitly through the
// orchestrator's App and its step executors (Design Note: no package-level
// global logger).
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	// WithFields returns a new Logger that prefixes every subsequent entry
	// with the given key/value pairs, e.g. WithFields("step", "mint").
	WithFields(kv ...any) Logger
	Sync() error
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// New builds a production-style console logger. debug lowers the level to
// Debug; otherwise Info.
func New(debug bool) Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.AddSync(os.Stderr),
		level,
	)

	l := zap.New(core, zap.AddCaller())

	return &zapLogger{s: l.Sugar()}
}

func (z *zapLogger) Debug(args ...any)                   { z.s.Debug(args...) }
func (z *zapLogger) Info(args ...any)                    { z.s.Info(args...) }
func (z *zapLogger) Warn(args ...any)                    { z.s.Warn(args...) }
func (z *zapLogger) Error(args ...any)                   { z.s.Error(args...) }
func (z *zapLogger) Fatal(args ...any)                   { z.s.Fatal(args...) }
func (z *zapLogger) Debugf(format string, args ...any)   { z.s.Debugf(format, args...) }
func (z *zapLogger) Infof(format string, args ...any)    { z.s.Infof(format, args...) }
func (z *zapLogger) Warnf(format string, args ...any)    { z.s.Warnf(format, args...) }
func (z *zapLogger) Errorf(format string, args ...any)   { z.s.Errorf(format, args...) }
func (z *zapLogger) Fatalf(format string, args ...any)   { z.s.Fatalf(format, args...) }
func (z *zapLogger) Sync() error                         { return z.s.Sync() }

func (z *zapLogger) WithFields(kv ...any) Logger {
	return &zapLogger{s: z.s.With(kv...)}
}
