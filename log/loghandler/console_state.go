package loghandler

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/qtraffics/qtstatus/log"
)

type consoleHandlerState struct {
	Err error

	buffer *bytes.Buffer
	group  string

	level func(l log.Level) string
	time  func(t time.Time) string
}

func (s *consoleHandlerState) WriteString(ss string) {
	if s.Err != nil {
		return
	}
	_, s.Err = s.buffer.WriteString(ss)
}

func (s *consoleHandlerState) WriteTime(t time.Time) {
	s.WriteString(s.time(t))
}

func (s *consoleHandlerState) WriteLevel(l log.Level) {
	s.WriteString(s.level(l))
}

func (s *consoleHandlerState) Space() {
	if s.Err != nil {
		return
	}
	s.Err = s.buffer.WriteByte(space)
}

func (s *consoleHandlerState) NextLine() {
	if s.Err != nil {
		return
	}
	s.Err = s.buffer.WriteByte('\n')
}

func (s *consoleHandlerState) WriteAttr(attr slog.Attr) bool {
	if s.Err != nil {
		return false
	}

	if attr.Key == "" {
		attr.Key = "!BADKEY"
	}

	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		for _, v := range value.Group() {
			v.Key = attr.Key + "." + v.Key
			if !s.WriteAttr(v) {
				return false
			}
		}
		return true
	}

	s.Space()
	if len(s.group) != 0 {
		s.WriteString(s.group + ".")
	}
	s.WriteString(attr.Key + "=" + s.formatValue(value))
	return s.Err == nil
}

func (s *consoleHandlerState) formatValue(value slog.Value) string {
	var valueStr string
	if value.Kind() == slog.KindTime && s.time != nil {
		valueStr = s.time(value.Time())
	} else {
		valueStr = value.String()
	}
	if strings.Contains(valueStr, " ") {
		valueStr = "`" + valueStr + "`"
	}
	return valueStr
}

func (s *consoleHandlerState) WriteMeta(meta slog.Attr) {
	s.Space()

	str := meta.Value.Resolve().String()
	if len(str) == 0 {
		str = "!EMPTY"
	}
	s.WriteString("[" + str + "]")
}

func (s *consoleHandlerState) Source(source *slog.Source) {
	s.WriteString(fmt.Sprintf("Caller: %s:%d %s\n", source.File, source.Line, source.Function))
}
