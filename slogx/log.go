package slogx

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// Log writes a record to l, or to slog.Default() when l is nil.
func Log(ctx context.Context, l *slog.Logger, level slog.Level, msg string, kvs ...attribute.KeyValue) {
	if l == nil {
		l = slog.Default()
	}
	l.LogAttrs(ctx, level, msg, NewLogFields(kvs...)...)
}

func Error(ctx context.Context, l *slog.Logger, msg string, err error, kvs ...attribute.KeyValue) {
	if l == nil {
		l = slog.Default()
	}
	l.LogAttrs(ctx, slog.LevelError, msg, append(NewLogFields(kvs...), ErrorAttr(err))...)
}

func Warn(ctx context.Context, l *slog.Logger, msg string, kvs ...attribute.KeyValue) {
	Log(ctx, l, slog.LevelWarn, msg, kvs...)
}

func Info(ctx context.Context, l *slog.Logger, msg string, kvs ...attribute.KeyValue) {
	Log(ctx, l, slog.LevelInfo, msg, kvs...)
}

func Debug(ctx context.Context, l *slog.Logger, msg string, kvs ...attribute.KeyValue) {
	Log(ctx, l, slog.LevelDebug, msg, kvs...)
}
