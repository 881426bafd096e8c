//go:build !linux

package loadavg

import "github.com/qtraffics/qtstatus/ex"

func sysinfo() (Averages, error) {
	return Averages{}, ex.New("sysinfo is only available on linux")
}
