package log

import (
	"log/slog"
	"strings"
)

const (
	metadataPrefix   = "_builtin.enhancements.metadata"
	metadataSplitter = ":"
)

var _ slog.LogValuer = (ValueFunc)(nil)

type ValueFunc func() slog.Value

func (v ValueFunc) LogValue() slog.Value {
	return v()
}

// NewMetadata builds an attr that console handlers render as a bracketed
// tag in front of the message instead of a key=value pair.
func NewMetadata(name string, v any) slog.Attr {
	key := strings.Join([]string{metadataPrefix, name}, metadataSplitter)
	var value slog.Value
	switch x := v.(type) {
	case string:
		value = slog.StringValue(x)
	case slog.Attr:
		value = x.Value
	case slog.Value:
		value = x
	default:
		value = slog.AnyValue(v)
	}

	return slog.Attr{Key: key, Value: value}
}

// Component tags every record of a logger with the emitting component.
func Component(name string) slog.Attr {
	return NewMetadata("component", name)
}

func SplitMetadata(attrs []slog.Attr) (meta, extra []slog.Attr) {
	for _, attr := range attrs {
		splitN := strings.SplitN(attr.Key, metadataSplitter, 2)
		if len(splitN) < 2 || splitN[0] != metadataPrefix {
			extra = append(extra, attr)
			continue
		}
		attr.Key = splitN[1]
		meta = append(meta, attr)
	}
	return
}
