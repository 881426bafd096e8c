package battery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qtraffics/qtstatus/probe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "/sys/class/power_supply/BAT0"

func battery(values map[string]string) probe.Map {
	m := probe.Map{}
	for k, v := range values {
		m[filepath.Join(base, k)] = v + "\n"
	}
	return m
}

func TestRead(t *testing.T) {
	cases := []struct {
		name     string
		values   map[string]string
		text     string
		category Category
	}{
		{
			name:     "low",
			values:   map[string]string{"present": "1", "charge_full": "100", "charge_now": "15", "status": "Discharging"},
			text:     "15%",
			category: CategoryLow,
		},
		{
			name:     "high",
			values:   map[string]string{"present": "1", "charge_full": "100", "charge_now": "90", "status": "Discharging"},
			text:     "90%",
			category: CategoryHigh,
		},
		{
			name:     "mid",
			values:   map[string]string{"present": "1", "charge_full": "100", "charge_now": "50", "status": "Discharging"},
			text:     "50%",
			category: CategoryMid,
		},
		{
			name:     "boundaries are mid",
			values:   map[string]string{"present": "1", "charge_full": "100", "charge_now": "20", "status": "Discharging"},
			text:     "20%",
			category: CategoryMid,
		},
		{
			name:     "charging",
			values:   map[string]string{"present": "1", "charge_full": "100", "charge_now": "5", "status": "Charging"},
			text:     "5%",
			category: CategoryCharging,
		},
		{
			name:     "full falls back to charging",
			values:   map[string]string{"present": "1", "charge_full": "100", "charge_now": "100", "status": "Full"},
			text:     "100%",
			category: CategoryCharging,
		},
		{
			name:     "missing status",
			values:   map[string]string{"present": "1", "charge_full": "100", "charge_now": "42"},
			text:     "42%",
			category: CategoryCharging,
		},
		{
			name:     "energy fallback",
			values:   map[string]string{"present": "1", "energy_full": "50000000", "energy_now": "30000000", "status": "Discharging"},
			text:     "60%",
			category: CategoryMid,
		},
		{
			name:   "not present",
			values: map[string]string{"charge_full": "100", "charge_now": "15"},
			text:   TextNotPresent,
		},
		{
			name:   "present zero",
			values: map[string]string{"present": "0"},
			text:   TextNotPresent,
		},
		{
			name:   "no full capacity",
			values: map[string]string{"present": "1", "charge_now": "15"},
			text:   "",
		},
		{
			name:   "no current charge",
			values: map[string]string{"present": "1", "charge_full": "100"},
			text:   "",
		},
		{
			name:   "negative",
			values: map[string]string{"present": "1", "charge_full": "100", "charge_now": "-1", "status": "Discharging"},
			text:   TextInvalid,
		},
		{
			name:   "garbage",
			values: map[string]string{"present": "1", "charge_full": "lots", "charge_now": "15", "status": "Discharging"},
			text:   TextInvalid,
		},
		{
			name:   "zero full capacity",
			values: map[string]string{"present": "1", "charge_full": "0", "charge_now": "15", "status": "Discharging"},
			text:   TextInvalid,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Read(battery(c.values), base)
			assert.Equal(t, c.text, r.Text)
			assert.Equal(t, c.category, r.Category)
		})
	}
}

func TestReadSysfs(t *testing.T) {
	dir := t.TempDir()
	for k, v := range map[string]string{
		"present":     "1\n",
		"charge_full": "4000000\n",
		"charge_now":  "3000000\n",
		"status":      "Discharging\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, k), []byte(v), 0o644))
	}

	r := Read(probe.FileProbe{}, dir)
	assert.Equal(t, "75%", r.Text)
	assert.Equal(t, CategoryMid, r.Category)
	assert.InDelta(t, 75.0, r.Percent, 1e-9)
}
