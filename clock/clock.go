package clock

import (
	"time"
	_ "time/tzdata"

	"github.com/ncruces/go-strftime"

	"github.com/qtraffics/qtstatus/ex"
)

// Formatter renders the current wall clock time of a fixed zone with a
// strftime pattern such as "%a, %d %b %H:%M %Y".
type Formatter struct {
	location *time.Location
	pattern  string
	now      func() time.Time
}

func New(zone, pattern string) (*Formatter, error) {
	location, err := time.LoadLocation(zone)
	if err != nil {
		return nil, ex.Causef(err, "load time zone %q", zone)
	}
	if pattern == "" {
		return nil, ex.New("empty time pattern")
	}
	return &Formatter{
		location: location,
		pattern:  pattern,
		now:      time.Now,
	}, nil
}

// WithNow returns a copy of f that reads the time from now.
func (f *Formatter) WithNow(now func() time.Time) *Formatter {
	f2 := *f
	f2.now = now
	return &f2
}

func (f *Formatter) Format() string {
	return strftime.Format(f.pattern, f.now().In(f.location))
}
