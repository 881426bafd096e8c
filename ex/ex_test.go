package ex

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCause(t *testing.T) {
	base := New("interface not found")
	err := Cause(base, "sample wlan0")
	assert.Equal(t, "sample wlan0 : interface not found", err.Error())
	assert.True(t, errors.Is(err, base))
	assert.Nil(t, Cause(nil, "nothing"))

	err = Causef(io.EOF, "read %s", "/proc/net/dev")
	assert.Equal(t, "read /proc/net/dev : EOF", err.Error())
	assert.True(t, errors.Is(err, io.EOF))
}

func TestErrors(t *testing.T) {
	assert.Nil(t, Errors())
	assert.Nil(t, Errors(nil, nil))
	assert.Equal(t, io.EOF, Errors(nil, io.EOF))

	joined := Errors(io.EOF, context.Canceled, io.EOF)
	assert.Equal(t, "EOF;\ncontext canceled", joined.Error())
	assert.True(t, IsMulti(joined, context.Canceled))
	assert.True(t, IsMulti(joined, io.ErrUnexpectedEOF, io.EOF))
	assert.False(t, IsMulti(joined, io.ErrClosedPipe))
}
