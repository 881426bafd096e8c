// Command qtstatus publishes a status line (temperature, load, network
// throughput, battery and time) as the root window name for dwm.
package main

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/qtraffics/qtstatus/config"
	"github.com/qtraffics/qtstatus/display"
	"github.com/qtraffics/qtstatus/ex"
	"github.com/qtraffics/qtstatus/log"
	"github.com/qtraffics/qtstatus/log/loghandler"
	"github.com/qtraffics/qtstatus/services"
	"github.com/qtraffics/qtstatus/status"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Default()
	logger := log.New(loghandler.New(loghandler.BuildOption{
		Level: cfg.LogLevel,
		Time:  true,
		Color: isTerminal(os.Stderr),
	}))
	log.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
	defer stop()

	x11 := display.NewX11(cfg.Display, log.WithAttr(logger, log.Component("display")))
	if err := services.Start(ctx, x11); err != nil {
		logger.Error("cannot open display", log.AttrError(err))
		return 1
	}

	publisher, err := status.New(status.Options{
		Config:  cfg,
		Display: x11,
		Logger:  log.WithAttr(logger, log.Component("status")),
	})
	if err != nil {
		logger.Error("setup failed", log.AttrError(err))
		return exitCode(services.Close(x11), 1)
	}

	runErr := publisher.Run(ctx)
	if err = ex.Errors(runErr, services.Close(x11)); err != nil {
		logger.Error("stopped", log.AttrError(err))
		return 1
	}
	return 0
}

func exitCode(closeErr error, code int) int {
	if closeErr != nil {
		log.Default().Error("close display", log.AttrError(closeErr))
	}
	return code
}
