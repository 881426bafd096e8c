// Package status samples every field of the status line once per tick and
// publishes the joined line.
package status

import (
	"context"
	"log/slog"
	"time"

	"github.com/qtraffics/qtstatus/clock"
	"github.com/qtraffics/qtstatus/config"
	"github.com/qtraffics/qtstatus/display"
	"github.com/qtraffics/qtstatus/enhancements/contextlib"
	"github.com/qtraffics/qtstatus/ex"
	"github.com/qtraffics/qtstatus/log"
	"github.com/qtraffics/qtstatus/probe"
	"github.com/qtraffics/qtstatus/sys/battery"
	"github.com/qtraffics/qtstatus/sys/loadavg"
	"github.com/qtraffics/qtstatus/sys/netrate"
	"github.com/qtraffics/qtstatus/sys/thermal"
	"github.com/qtraffics/qtstatus/values"
)

type LoadReader interface {
	Read(ctx context.Context) (loadavg.Averages, error)
}

type RateMeasurer interface {
	MeasureRate(ctx context.Context, iface string, interval time.Duration) (netrate.Rate, error)
}

type TimeFormatter interface {
	Format() string
}

// Options wires the collaborators of a Publisher. Only Display is
// required; the rest default to the host implementations built from
// Config.
type Options struct {
	Config  config.Config
	Display display.Publisher

	Probe   probe.Probe
	Load    LoadReader
	Clock   TimeFormatter
	Net     RateMeasurer
	Palette *display.Palette
	Sleep   func(ctx context.Context, d time.Duration) error
	Logger  log.Logger
}

type Publisher struct {
	cfg     config.Config
	display display.Publisher
	probe   probe.Probe
	load    LoadReader
	clock   TimeFormatter
	net     RateMeasurer
	palette display.Palette
	sleep   func(ctx context.Context, d time.Duration) error
	logger  log.Logger
}

func New(opt Options) (*Publisher, error) {
	if opt.Display == nil {
		return nil, ex.New("missing display")
	}
	cfg := opt.Config.Normalize()
	logger := values.UseDefaultNil(opt.Logger, log.NOP)

	p := &Publisher{
		cfg:     cfg,
		display: opt.Display,
		probe:   opt.Probe,
		load:    opt.Load,
		clock:   opt.Clock,
		net:     opt.Net,
		sleep:   opt.Sleep,
		logger:  logger,
	}
	if p.probe == nil {
		p.probe = probe.FileProbe{}
	}
	if p.load == nil {
		p.load = loadavg.New(log.WithAttr(logger, log.Component("loadavg")))
	}
	if p.clock == nil {
		formatter, err := clock.New(cfg.TimeZone, cfg.TimeFormat)
		if err != nil {
			return nil, err
		}
		p.clock = formatter
	}
	if p.net == nil {
		p.net = netrate.New(
			netrate.WithTable(cfg.CounterTable),
			netrate.WithLogger(log.WithAttr(logger, log.Component("netrate"))),
		)
	}
	if opt.Palette != nil {
		p.palette = *opt.Palette
	} else {
		p.palette = display.NewPalette(cfg.Colors)
	}
	if p.sleep == nil {
		p.sleep = contextlib.Sleep
	}
	return p, nil
}

// Tick samples every field once. The temperature and battery fields and a
// missing or malformed interface row degrade to placeholders; a failing
// load average query or an unreadable counter table is returned as an
// error. Tick blocks for at least the configured sample interval.
func (p *Publisher) Tick(ctx context.Context) (Line, error) {
	var line Line
	line.Temp = thermal.Read(p.probe, p.cfg.ThermalBase, p.cfg.ThermalSensor)

	avg, err := p.load.Read(ctx)
	if err != nil {
		return Line{}, err
	}
	line.Load = avg.String()

	line.Time = p.clock.Format()

	rate, err := p.net.MeasureRate(ctx, p.cfg.Interface, p.cfg.SampleInterval)
	switch {
	case err == nil:
		line.Net = rate.String()
	case ex.IsMulti(err, netrate.ErrInterfaceNotFound, netrate.ErrMalformedCounters):
		p.logger.Warn("network field unavailable",
			log.AttrField("net"), log.AttrInterface(p.cfg.Interface), log.AttrError(err))
	default:
		return Line{}, err
	}

	line.Battery = p.palette.Battery(battery.Read(p.probe, p.cfg.BatteryBase))
	return line, nil
}

// Run publishes a fresh line every tick until ctx is done, which is not
// an error. Any other failure stops the loop and is returned.
func (p *Publisher) Run(ctx context.Context) error {
	p.logger.Info("publishing status",
		log.AttrInterface(p.cfg.Interface),
		slog.Duration("tick", p.cfg.TickInterval))
	for !contextlib.Done(ctx) {
		start := time.Now()
		line, err := p.Tick(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			return ex.Cause(err, "tick")
		}
		if err = p.display.Publish(line.String()); err != nil {
			return ex.Cause(err, "publish")
		}
		p.logger.Debug("published", log.AttrElapsed(time.Since(start)))

		if err = p.sleep(ctx, p.cfg.TickInterval); err != nil {
			break
		}
	}
	p.logger.Info("status publishing stopped")
	return nil
}
