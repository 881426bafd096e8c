package loghandler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/qtraffics/qtstatus/ex"
	"github.com/qtraffics/qtstatus/log"
	"github.com/qtraffics/qtstatus/values"
)

var space byte = ' '

var _ log.Handler = (*ConsoleHandler)(nil)

// ConsoleHandler renders records as single human readable lines:
//
//	<time> <LEVEL> [meta...] message key=value...
type ConsoleHandler struct {
	level, sourceLevel log.Level
	enableTime         bool
	timeFormat         func(t time.Time) string
	levelFormat        func(l log.Level) string

	writer *lockedWriter

	groupPrefix     string
	preFormatedAttr []slog.Attr
	metadata        []slog.Attr
}

type ConsoleHandlerOption struct {
	Level       log.Level
	SourceLevel log.Level
	EnableTime  bool

	TimeFormatter  func(t time.Time) string
	LevelFormatter func(level log.Level) string
}

type lockedWriter struct {
	access sync.Mutex
	w      io.Writer
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.access.Lock()
	defer w.access.Unlock()
	return w.w.Write(p)
}

func NewConsoleHandler(w io.Writer, option ConsoleHandlerOption) log.Handler {
	if w == nil || w == io.Discard {
		return slog.DiscardHandler
	}
	option.TimeFormatter = values.UseDefaultNil(option.TimeFormatter, log.TimeFormatter)
	option.LevelFormatter = values.UseDefaultNil(option.LevelFormatter, log.EqualLengthLevelFormatter)
	option.SourceLevel = values.UseDefault(option.SourceLevel, log.LevelDisable)

	return &ConsoleHandler{
		writer:      &lockedWriter{w: w},
		level:       option.Level,
		sourceLevel: option.SourceLevel,
		enableTime:  option.EnableTime,
		timeFormat:  option.TimeFormatter,
		levelFormat: option.LevelFormatter,
	}
}

func (h *ConsoleHandler) newState(buffer *bytes.Buffer) *consoleHandlerState {
	return &consoleHandlerState{
		buffer: buffer,
		group:  h.groupPrefix,
		level:  h.levelFormat,
		time:   h.timeFormat,
	}
}

func (h *ConsoleHandler) clone() *ConsoleHandler {
	return &ConsoleHandler{
		level:       h.level,
		sourceLevel: h.sourceLevel,
		enableTime:  h.enableTime,
		timeFormat:  h.timeFormat,
		levelFormat: h.levelFormat,

		writer:          h.writer,
		groupPrefix:     h.groupPrefix,
		preFormatedAttr: slices.Clone(h.preFormatedAttr),
		metadata:        slices.Clone(h.metadata),
	}
}

func (h *ConsoleHandler) Enabled(ctx context.Context, level log.Level) bool {
	return h.level <= level
}

func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	var buffer bytes.Buffer
	state := h.newState(&buffer)

	if h.enableTime {
		if r.Time.IsZero() {
			r.Time = time.Now()
		}
		state.WriteTime(r.Time)
		state.Space()
	}
	if state.WriteLevel(r.Level); state.Err != nil {
		return ex.Cause(state.Err, "write level")
	}

	for _, m := range h.metadata {
		state.WriteMeta(m)
	}

	state.Space()
	if state.WriteString(r.Message); state.Err != nil {
		return ex.Cause(state.Err, "write message")
	}

	// attrs bound through WithAttrs were recorded without the group that
	// was active afterwards
	preState := *state
	preState.group = ""
	for _, attr := range h.preFormatedAttr {
		preState.WriteAttr(attr)
	}
	if state.Err = preState.Err; state.Err != nil {
		return ex.Cause(state.Err, "write attrs")
	}

	r.Attrs(state.WriteAttr)
	if state.NextLine(); state.Err != nil {
		return ex.Cause(state.Err, "write attrs")
	}

	if r.Level >= h.sourceLevel {
		if source := r.Source(); source != nil {
			state.Source(source)
		}
	}
	if state.Err != nil {
		return state.Err
	}

	_, err := h.writer.Write(buffer.Bytes())
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	metadata, extraAttr := log.SplitMetadata(attrs)
	h2 := h.clone()
	h2.metadata = append(h2.metadata, metadata...)
	for _, attr := range extraAttr {
		if h2.groupPrefix != "" {
			attr.Key = h2.groupPrefix + "." + attr.Key
		}
		h2.preFormatedAttr = append(h2.preFormatedAttr, attr)
	}
	return h2
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	if h2.groupPrefix == "" {
		h2.groupPrefix = name
	} else {
		h2.groupPrefix = h2.groupPrefix + "." + name
	}
	return h2
}
