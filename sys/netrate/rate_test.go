package netrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSpeed(t *testing.T) {
	cases := []struct {
		bps  float64
		want string
	}{
		{0, "0.00 KB/s"},
		{512, "0.50 KB/s"},
		{1024, "1.00 KB/s"},
		{1536.4, "1.50 KB/s"},
		{1024 * 1024, "1024.00 KB/s"},
		{1024*1024 + 1024, "1.001 MB/s"},
		{5 * 1024 * 1024, "5.000 MB/s"},
		{-2048, "-2.00 KB/s"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatSpeed(c.bps), c.bps)
	}
}

func TestBetween(t *testing.T) {
	a := Sample{Received: 1000, Sent: 5000}

	t.Run("one second", func(t *testing.T) {
		r := Between(a, Sample{Received: 2024, Sent: 5512}, time.Second)
		assert.Equal(t, Rate{Down: 1024, Up: 512}, r)
		assert.Equal(t, "down: 1.00 KB/s up: 0.50 KB/s", r.String())
	})

	t.Run("scaled by interval", func(t *testing.T) {
		r := Between(a, Sample{Received: 1000 + 4096, Sent: 5000}, 2*time.Second)
		assert.Equal(t, Rate{Down: 2048, Up: 0}, r)
	})

	t.Run("counter reset", func(t *testing.T) {
		r := Between(a, Sample{Received: 0, Sent: 5000}, time.Second)
		assert.Equal(t, float64(-1000), r.Down)
		assert.Equal(t, float64(0), r.Up)
	})

	t.Run("zero interval", func(t *testing.T) {
		r := Between(a, Sample{Received: 2000, Sent: 5000}, 0)
		assert.Equal(t, float64(1000), r.Down)
	})
}
