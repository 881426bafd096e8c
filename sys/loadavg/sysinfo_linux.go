//go:build linux

package loadavg

import (
	"golang.org/x/sys/unix"
)

// sysinfo(2) reports loads as fixed point numbers with 16 fractional bits.
const loadScale = 1 << 16

func sysinfo() (Averages, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return Averages{}, err
	}
	return Averages{
		Load1:  float64(info.Loads[0]) / loadScale,
		Load5:  float64(info.Loads[1]) / loadScale,
		Load15: float64(info.Loads[2]) / loadScale,
	}, nil
}
