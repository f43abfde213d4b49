package singleton

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the capability the singleton hands out.
//
// It is a deliberately small slice of zap's sugared surface: formatted and
// structured variants of the usual levels, named sub-loggers, and Sync.
type Logger interface {
	// Named returns a child logger with the given name segment appended.
	Named(name string) Logger

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	Sync() error
}

// zapLogger adapts a zap.SugaredLogger to Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l *zapLogger) Named(name string) Logger { return &zapLogger{s: l.s.Named(name)} }

func (l *zapLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l *zapLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l *zapLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l *zapLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

func (l *zapLogger) Debugw(msg string, keysAndValues ...any) { l.s.Debugw(msg, keysAndValues...) }
func (l *zapLogger) Infow(msg string, keysAndValues ...any)  { l.s.Infow(msg, keysAndValues...) }
func (l *zapLogger) Warnw(msg string, keysAndValues ...any)  { l.s.Warnw(msg, keysAndValues...) }
func (l *zapLogger) Errorw(msg string, keysAndValues ...any) { l.s.Errorw(msg, keysAndValues...) }

func (l *zapLogger) Sync() error { return l.s.Sync() }

// NewWith returns an independent Logger from a modified zap.Config.
//
// The singleton accessors share one instance; NewWith is the escape hatch for
// callers that need their own configuration (the CLI builds a colored
// development logger with it).
func NewWith(cfgFn func(cfg *zap.Config)) (Logger, error) {
	cfg := zap.NewProductionConfig()
	if cfgFn != nil {
		cfgFn(&cfg)
	}
	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{s: core.Sugar()}, nil
}

// Wrap adapts an existing zap logger to the Logger interface.
//
// Used by tests to observe singleton-shaped loggers, and by hosts that
// already own a zap instance.
func Wrap(l *zap.Logger) Logger {
	return &zapLogger{s: l.Sugar()}
}

// newShared builds the logger the singleton accessors hand out: production
// config, info level, stderr.
func newShared() *zapLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return &zapLogger{s: zap.Must(cfg.Build()).Sugar()}
}
