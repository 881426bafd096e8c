package loghandler

import (
	"io"
	"log/slog"
	"os"

	"github.com/qtraffics/qtstatus/log"
)

type BuildOption struct {
	Disabled bool
	Level    log.Level
	Time     bool
	Debug    bool
	Color    bool

	// OutputWriter defaults to os.Stderr.
	OutputWriter io.Writer
}

func New(opt BuildOption) log.Handler {
	if opt.Disabled {
		return slog.DiscardHandler
	}
	var (
		file           = opt.OutputWriter
		sourceLevel    = log.LevelDisable
		levelFormatter = log.EqualLengthLevelFormatter
	)
	if file == nil {
		file = os.Stderr
	}
	if opt.Debug {
		sourceLevel = log.LevelError
	}
	if opt.Color {
		levelFormatter = log.ColorLevelFormatter
	}

	return NewConsoleHandler(file, ConsoleHandlerOption{
		Level:      opt.Level,
		EnableTime: opt.Time,

		SourceLevel:    sourceLevel,
		LevelFormatter: levelFormatter,
	})
}
