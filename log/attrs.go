package log

import (
	"log/slog"
	"time"
)

const (
	KeyError     = "error"
	KeyField     = "field"
	KeyInterface = "iface"
	KeyElapsed   = "elapsed"
)

func AttrError(err error) slog.Attr {
	if err == nil {
		panic("log error on a nil error")
	}

	return slog.Any(KeyError, ValueFunc(func() slog.Value {
		return slog.StringValue(err.Error())
	}))
}

func AttrField(name string) slog.Attr {
	return slog.String(KeyField, name)
}

func AttrInterface(name string) slog.Attr {
	return slog.String(KeyInterface, name)
}

func AttrElapsed(d time.Duration) slog.Attr {
	return slog.Duration(KeyElapsed, d.Round(time.Millisecond))
}
