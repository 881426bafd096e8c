package thermal

import (
	"fmt"
	"strconv"

	"github.com/qtraffics/qtstatus/probe"
)

// Read formats the hwmon sensor at base/key, reported in millidegrees
// Celsius, as whole degrees. Missing or non numeric sensors read as "".
func Read(p probe.Probe, base, key string) string {
	raw, ok := p.Read(base, key)
	if !ok {
		return ""
	}
	milli, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%02.0f C", milli/1000)
}
