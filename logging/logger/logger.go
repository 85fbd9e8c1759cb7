// Package logger provides structured logging backed by logrus.
//
// A Logger logs key/value pairs alongside a message:
//
//	log.Info(ctx, "page fetched", "entries", n, "cursor", cursor)
//
// New configures the process-wide standard logger from configuration and
// returns a cleanup function; StdLogger returns it for injection into
// components.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/docubase/docursor/ctxutil"
)

// Config configures the logger.
type Config struct {
	Level      int    `json:"level" yaml:"level"`
	Format     string `json:"format" yaml:"format"`
	Output     string `json:"output" yaml:"output"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// Logger wraps a logrus logger with context-aware key/value methods.
type Logger struct {
	l *logrus.Logger
}

var (
	std     *Logger
	stdOnce sync.Once
)

// New initializes the standard logger from configuration and returns a
// cleanup function that flushes and closes any open log file.
func New(cfg *Config) (func(), error) {
	l := logrus.New()
	cleanup := func() {}

	if cfg == nil {
		cfg = &Config{}
	}

	level := logrus.InfoLevel
	if cfg.Level != 0 {
		level = logrus.Level(cfg.Level)
	}
	l.SetLevel(level)

	switch cfg.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch cfg.Output {
	case "file":
		if cfg.OutputFile == "" {
			return nil, fmt.Errorf("logger: output is file but output_file is empty")
		}
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: opening %s: %w", cfg.OutputFile, err)
		}
		l.SetOutput(f)
		cleanup = func() { _ = f.Close() }
	case "none":
		l.SetOutput(io.Discard)
	default:
		l.SetOutput(os.Stdout)
	}

	std = &Logger{l: l}
	return cleanup, nil
}

// StdLogger returns the standard logger. It is usable before New is called,
// with default settings.
func StdLogger() *Logger {
	stdOnce.Do(func() {
		if std == nil {
			l := logrus.New()
			l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			std = &Logger{l: l}
		}
	})
	return std
}

// fields converts alternating key/value pairs into logrus fields. A
// dangling key is logged under "extra" rather than dropped.
func fields(kv []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		f[key] = kv[i+1]
	}
	if len(kv)%2 != 0 {
		f["extra"] = kv[len(kv)-1]
	}
	return f
}

// entry builds a logrus entry carrying the context, key/value fields and,
// when present, the request trace id.
func (lg *Logger) entry(ctx context.Context, kv []any) *logrus.Entry {
	e := lg.l.WithContext(ctx).WithFields(fields(kv))
	if traceID := ctxutil.GetTraceID(ctx); traceID != "" {
		e = e.WithField(ctxutil.TraceIDKey, traceID)
	}
	return e
}

// Debug logs a message at debug level with key/value pairs.
func (lg *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	lg.entry(ctx, kv).Debug(msg)
}

// Info logs a message at info level with key/value pairs.
func (lg *Logger) Info(ctx context.Context, msg string, kv ...any) {
	lg.entry(ctx, kv).Info(msg)
}

// Warn logs a message at warn level with key/value pairs.
func (lg *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	lg.entry(ctx, kv).Warn(msg)
}

// Error logs a message at error level with key/value pairs.
func (lg *Logger) Error(ctx context.Context, msg string, kv ...any) {
	lg.entry(ctx, kv).Error(msg)
}

// Fatal logs a message at fatal level with key/value pairs and exits.
func (lg *Logger) Fatal(ctx context.Context, msg string, kv ...any) {
	lg.entry(ctx, kv).Fatal(msg)
}
