package probe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileProbe(t *testing.T) {
	base := t.TempDir()
	write := func(key, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(base, key), []byte(content), 0o644))
	}
	write("present", "1\n")
	write("status", "Discharging  \n")
	write("empty", "\n")
	write("void", "")
	write("multi", "first\nsecond\n")
	write("long", strings.Repeat("9", 2*MaxLineLength))

	var p FileProbe
	cases := []struct {
		key   string
		value string
		ok    bool
	}{
		{"present", "1", true},
		{"status", "Discharging", true},
		{"empty", "", true},
		{"void", "", true},
		{"multi", "first", true},
		{"missing", "", false},
	}
	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			value, ok := p.Read(base, c.key)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.value, value)
		})
	}

	t.Run("bounded", func(t *testing.T) {
		value, ok := p.Read(base, "long")
		assert.True(t, ok)
		assert.Len(t, value, MaxLineLength)
	})

	t.Run("directory", func(t *testing.T) {
		_, ok := p.Read(filepath.Dir(base), filepath.Base(base))
		assert.False(t, ok)
	})
}

func TestMap(t *testing.T) {
	p := Map{"/sys/class/hwmon/hwmon0/temp1_input": "45000\n"}
	value, ok := p.Read("/sys/class/hwmon/hwmon0", "temp1_input")
	assert.True(t, ok)
	assert.Equal(t, "45000", value)

	_, ok = p.Read("/sys/class/hwmon/hwmon0", "temp2_input")
	assert.False(t, ok)
}
