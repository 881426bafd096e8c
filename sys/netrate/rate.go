package netrate

import (
	"fmt"
	"time"
)

const (
	kilo = 1024.0
	mega = kilo * kilo
)

// Rate is a throughput in bytes per second. Values are negative when a
// counter went backwards between samples, for example after the interface
// was reset.
type Rate struct {
	Down float64
	Up   float64
}

// Between computes the rate from sample a to the later sample b taken
// interval apart.
func Between(a, b Sample, interval time.Duration) Rate {
	seconds := interval.Seconds()
	if seconds <= 0 {
		seconds = 1
	}
	return Rate{
		Down: float64(int64(b.Received-a.Received)) / seconds,
		Up:   float64(int64(b.Sent-a.Sent)) / seconds,
	}
}

func (r Rate) String() string {
	return "down: " + FormatSpeed(r.Down) + " up: " + FormatSpeed(r.Up)
}

// FormatSpeed renders bytes per second as KB/s with two decimals, or as
// MB/s with three decimals once it exceeds 1024 KB/s.
func FormatSpeed(bytesPerSecond float64) string {
	if bytesPerSecond > mega {
		return fmt.Sprintf("%.3f MB/s", bytesPerSecond/mega)
	}
	return fmt.Sprintf("%.2f KB/s", bytesPerSecond/kilo)
}
