package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFormatter(t *testing.T) {
	assert.Equal(t, "DEBUG", EqualLengthLevelFormatter(LevelDebug))
	assert.Equal(t, "INFO ", EqualLengthLevelFormatter(LevelInfo))
	assert.Equal(t, "WARN ", EqualLengthLevelFormatter(LevelWarn))
	assert.Equal(t, "ERROR", EqualLengthLevelFormatter(LevelError))
	assert.Equal(t, "ERROR+1", EqualLengthLevelFormatter(LevelDisable))
	assert.Contains(t, ColorLevelFormatter(LevelWarn), "WARN")
}

func TestSplitMetadata(t *testing.T) {
	meta, extra := SplitMetadata([]slog.Attr{
		Component("netrate"),
		AttrInterface("wlan0"),
	})
	if assert.Len(t, meta, 1) {
		assert.Equal(t, "component", meta[0].Key)
		assert.Equal(t, "netrate", meta[0].Value.String())
	}
	if assert.Len(t, extra, 1) {
		assert.Equal(t, KeyInterface, extra[0].Key)
	}
}

func TestWithAttr(t *testing.T) {
	var out bytes.Buffer
	logger := New(slog.NewTextHandler(&out, nil))
	scoped := WithAttr(logger, AttrField("battery"))
	scoped.Info("degraded", AttrError(errors.New("invalid")))

	line := out.String()
	assert.True(t, strings.Contains(line, "field=battery"), line)
	assert.True(t, strings.Contains(line, "error=invalid"), line)

	assert.Nil(t, SlogLogger(nil))
	assert.Panics(t, func() { AttrError(nil) })
}
