package loadavg

import (
	"context"
	"fmt"

	"github.com/qtraffics/qtstatus/ex"
	"github.com/qtraffics/qtstatus/log"
	"github.com/qtraffics/qtstatus/values"

	psload "github.com/shirou/gopsutil/v4/load"
)

type Averages struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

func (a Averages) String() string {
	return fmt.Sprintf("%.2f %.2f %.2f", a.Load1, a.Load5, a.Load15)
}

// Reader queries the host's 1, 5 and 15 minute load averages.
type Reader struct {
	query    func(ctx context.Context) (*psload.AvgStat, error)
	fallback func() (Averages, error)
	logger   log.Logger
}

func New(logger log.Logger) *Reader {
	return &Reader{
		query:    psload.AvgWithContext,
		fallback: sysinfo,
		logger:   values.UseDefaultNil(logger, log.NOP),
	}
}

func (r *Reader) Read(ctx context.Context) (Averages, error) {
	stat, err := r.query(ctx)
	if err == nil && stat != nil {
		return Averages{Load1: stat.Load1, Load5: stat.Load5, Load15: stat.Load15}, nil
	}
	if err == nil {
		err = ex.New("empty load average")
	}

	r.logger.Debug("load average query failed, trying sysinfo", log.AttrError(err))
	avg, fbErr := r.fallback()
	if fbErr != nil {
		return Averages{}, ex.Cause(ex.Errors(err, fbErr), "query load average")
	}
	return avg, nil
}
