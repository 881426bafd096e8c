// Package battery derives the charge field of the status line from the
// power_supply class attributes of a battery.
package battery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qtraffics/qtstatus/probe"
)

type Category int

const (
	CategoryNone Category = iota
	CategoryLow
	CategoryMid
	CategoryHigh
	CategoryCharging
)

func (c Category) String() string {
	switch c {
	case CategoryLow:
		return "low"
	case CategoryMid:
		return "mid"
	case CategoryHigh:
		return "high"
	case CategoryCharging:
		return "charging"
	default:
		return "none"
	}
}

const (
	TextNotPresent = "not present"
	TextInvalid    = "invalid"

	lowThreshold  = 20
	highThreshold = 80
)

// Reading is one evaluation of the gauge. Text is the display value and
// Category tells how it should be styled; CategoryNone means unstyled.
type Reading struct {
	Text     string
	Category Category
	Percent  float64
}

// Kernels rename charge_* to energy_* after suspend on some hardware, so
// both spellings are probed.
var (
	fullKeys = []string{"charge_full", "energy_full"}
	nowKeys  = []string{"charge_now", "energy_now"}
)

func Read(p probe.Probe, base string) Reading {
	if present, ok := p.Read(base, "present"); !ok || !strings.HasPrefix(present, "1") {
		return Reading{Text: TextNotPresent}
	}

	full, ok := readFirst(p, base, fullKeys)
	if !ok {
		return Reading{}
	}
	now, ok := readFirst(p, base, nowKeys)
	if !ok {
		return Reading{}
	}

	var status string
	if raw, ok := p.Read(base, "status"); ok {
		if fields := strings.Fields(raw); len(fields) > 0 {
			status = fields[0]
		}
	}

	fullCap, fullOK := parseCapacity(full)
	nowCap, nowOK := parseCapacity(now)
	if !fullOK || !nowOK || fullCap == 0 {
		return Reading{Text: TextInvalid}
	}

	percent := float64(nowCap) / float64(fullCap) * 100
	return Reading{
		Text:     fmt.Sprintf("%.0f%%", percent),
		Category: categorize(status, percent),
		Percent:  percent,
	}
}

func categorize(status string, percent float64) Category {
	switch {
	case strings.HasPrefix(status, "Discharging"):
		switch {
		case percent < lowThreshold:
			return CategoryLow
		case percent > highThreshold:
			return CategoryHigh
		default:
			return CategoryMid
		}
	case strings.HasPrefix(status, "Charging"):
		return CategoryCharging
	default:
		// Full, Unknown and Not charging share the charging style.
		return CategoryCharging
	}
}

func readFirst(p probe.Probe, base string, keys []string) (string, bool) {
	for _, key := range keys {
		if v, ok := p.Read(base, key); ok {
			return v, true
		}
	}
	return "", false
}

func parseCapacity(s string) (uint64, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
