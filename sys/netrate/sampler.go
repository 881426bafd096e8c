// Package netrate measures the throughput of a network interface from two
// readings of the kernel's cumulative traffic counters.
package netrate

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/qtraffics/qtstatus/enhancements/contextlib"
	"github.com/qtraffics/qtstatus/ex"
	"github.com/qtraffics/qtstatus/log"
	"github.com/qtraffics/qtstatus/values"
)

type Sampler struct {
	table  string
	open   func(name string) (io.ReadCloser, error)
	wait   func(ctx context.Context, d time.Duration) error
	logger log.Logger
}

type Option interface {
	apply(s *Sampler)
}

type funcOption func(s *Sampler)

func (fo funcOption) apply(s *Sampler) {
	fo(s)
}

func WithTable(path string) Option {
	return funcOption(func(s *Sampler) {
		s.table = path
	})
}

// WithOpener replaces how the counter table is opened.
func WithOpener(open func(name string) (io.ReadCloser, error)) Option {
	return funcOption(func(s *Sampler) {
		s.open = open
	})
}

// WithWaiter replaces the wait between the two samples of MeasureRate.
func WithWaiter(wait func(ctx context.Context, d time.Duration) error) Option {
	return funcOption(func(s *Sampler) {
		s.wait = wait
	})
}

func WithLogger(logger log.Logger) Option {
	return funcOption(func(s *Sampler) {
		s.logger = logger
	})
}

func New(opts ...Option) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt.apply(s)
	}
	s.table = values.UseDefault(s.table, DefaultTable)
	if s.open == nil {
		s.open = func(name string) (io.ReadCloser, error) { return os.Open(name) }
	}
	if s.wait == nil {
		s.wait = contextlib.Sleep
	}
	s.logger = values.UseDefaultNil(s.logger, log.NOP)
	return s
}

// Sample reads the current counters of iface. It fails with
// ErrInterfaceNotFound when the table has no row for iface.
func (s *Sampler) Sample(iface string) (Sample, error) {
	f, err := s.open(s.table)
	if err != nil {
		return Sample{}, ex.Causef(err, "open %s", s.table)
	}
	defer f.Close()

	sample, err := ParseCounters(f, iface)
	if err != nil {
		return Sample{}, ex.Causef(err, "sample %s", iface)
	}
	return sample, nil
}

// MeasureRate samples iface twice, interval apart, and returns the rate
// between the samples. It blocks for at least interval unless ctx is done
// first.
func (s *Sampler) MeasureRate(ctx context.Context, iface string, interval time.Duration) (Rate, error) {
	before, err := s.Sample(iface)
	if err != nil {
		return Rate{}, err
	}
	if err = s.wait(ctx, interval); err != nil {
		return Rate{}, err
	}
	after, err := s.Sample(iface)
	if err != nil {
		return Rate{}, err
	}

	rate := Between(before, after, interval)
	if after.Received < before.Received || after.Sent < before.Sent {
		s.logger.Warn("interface counters went backwards",
			log.AttrInterface(iface),
			slog.Uint64("received", after.Received),
			slog.Uint64("sent", after.Sent))
	}
	return rate, nil
}
