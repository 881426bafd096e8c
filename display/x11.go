package display

import (
	"context"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/qtraffics/qtstatus/ex"
	"github.com/qtraffics/qtstatus/log"
	"github.com/qtraffics/qtstatus/services"
	"github.com/qtraffics/qtstatus/values"
)

var ErrNotStarted = ex.New("display connection not started")

var (
	_ Publisher          = (*X11)(nil)
	_ services.LifeCycle = (*X11)(nil)
)

// X11 publishes titles as the WM_NAME of the root window, which dwm and
// similar window managers draw in their status area.
type X11 struct {
	display string
	logger  log.Logger

	conn *xgb.Conn
	root xproto.Window
}

// NewX11 returns an unconnected publisher for display, "" meaning $DISPLAY.
func NewX11(display string, logger log.Logger) *X11 {
	return &X11{
		display: display,
		logger:  values.UseDefaultNil(logger, log.NOP),
	}
}

func (x *X11) Start(ctx context.Context) error {
	if x.conn != nil {
		return nil
	}
	conn, err := xgb.NewConnDisplay(x.display)
	if err != nil {
		return ex.Cause(err, "cannot open display")
	}
	x.conn = conn
	x.root = xproto.Setup(conn).DefaultScreen(conn).Root
	x.logger.Debug("display connected")
	return nil
}

// Publish replaces the root window name and waits for the server to
// acknowledge it.
func (x *X11) Publish(title string) error {
	if x.conn == nil {
		return ErrNotStarted
	}
	data := []byte(title)
	err := xproto.ChangePropertyChecked(x.conn, xproto.PropModeReplace, x.root,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(data)), data).Check()
	if err != nil {
		return ex.Cause(err, "set root window name")
	}
	return nil
}

func (x *X11) Close() error {
	if x.conn == nil {
		return nil
	}
	x.conn.Close()
	x.conn = nil
	x.logger.Debug("display closed")
	return nil
}
