// Package config carries the compiled-in settings of qtstatus.
package config

import (
	"time"

	"github.com/qtraffics/qtstatus/log"
	"github.com/qtraffics/qtstatus/values"
)

type Config struct {
	// hwmon sensor reporting millidegrees Celsius.
	ThermalBase   string
	ThermalSensor string

	BatteryBase string

	Interface    string
	CounterTable string
	// SampleInterval separates the two counter samples of a tick.
	SampleInterval time.Duration

	// TickInterval is the pause after each publish.
	TickInterval time.Duration

	TimeZone   string
	TimeFormat string

	// Colors styles the battery field with ANSI sequences.
	Colors bool

	// Display is the X display name, "" meaning $DISPLAY.
	Display  string
	LogLevel log.Level
}

const (
	minInterval = 100 * time.Millisecond
	maxInterval = time.Minute
)

func Default() Config {
	return Config{
		ThermalBase:    "/sys/class/hwmon/hwmon0",
		ThermalSensor:  "temp1_input",
		BatteryBase:    "/sys/class/power_supply/BAT0",
		Interface:      "wlan0",
		CounterTable:   "/proc/net/dev",
		SampleInterval: time.Second,
		TickInterval:   2 * time.Second,
		TimeZone:       "Europe/Amsterdam",
		TimeFormat:     "%a, %d %b %H:%M %Y",
		Colors:         true,
		LogLevel:       log.LevelInfo,
	}
}

// Normalize fills unset fields from Default and clamps the intervals.
func (c Config) Normalize() Config {
	d := Default()
	c.ThermalBase = values.UseDefault(c.ThermalBase, d.ThermalBase)
	c.ThermalSensor = values.UseDefault(c.ThermalSensor, d.ThermalSensor)
	c.BatteryBase = values.UseDefault(c.BatteryBase, d.BatteryBase)
	c.Interface = values.UseDefault(c.Interface, d.Interface)
	c.CounterTable = values.UseDefault(c.CounterTable, d.CounterTable)
	c.TimeZone = values.UseDefault(c.TimeZone, d.TimeZone)
	c.TimeFormat = values.UseDefault(c.TimeFormat, d.TimeFormat)

	c.SampleInterval = values.UseBetween(values.UseDefault(c.SampleInterval, d.SampleInterval), minInterval, maxInterval)
	c.TickInterval = values.UseBetween(values.UseDefault(c.TickInterval, d.TickInterval), minInterval, maxInterval)
	return c
}
