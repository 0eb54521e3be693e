package slogx

import (
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

func NewLogFields(kvs ...attribute.KeyValue) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(kvs))
	for _, kv := range kvs {
		key := string(kv.Key)
		switch kv.Value.Type() {
		case attribute.BOOL:
			attrs = append(attrs, slog.Bool(key, kv.Value.AsBool()))
		case attribute.INT64:
			attrs = append(attrs, slog.Int64(key, kv.Value.AsInt64()))
		case attribute.FLOAT64:
			attrs = append(attrs, slog.Float64(key, kv.Value.AsFloat64()))
		case attribute.STRING:
			attrs = append(attrs, slog.String(key, kv.Value.AsString()))
		default:
			attrs = append(attrs, slog.Any(key, kv.Value.AsInterface()))
		}
	}
	return attrs
}

func ErrorAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
