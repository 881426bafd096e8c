package display

import (
	"context"
	"io"
	"sync"

	"github.com/qtraffics/qtstatus/ex"
	"github.com/qtraffics/qtstatus/services"
)

var (
	_ Publisher          = (*Stream)(nil)
	_ services.LifeCycle = (*Stream)(nil)
)

// Stream writes every title as one line to w.
type Stream struct {
	access sync.Mutex
	w      io.Writer
}

func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

func (s *Stream) Start(ctx context.Context) error { return nil }
func (s *Stream) Close() error                    { return nil }

func (s *Stream) Publish(title string) error {
	s.access.Lock()
	defer s.access.Unlock()
	if _, err := io.WriteString(s.w, title+"\n"); err != nil {
		return ex.Cause(err, "write title")
	}
	return nil
}
