package services

import (
	"context"

	"github.com/qtraffics/qtstatus/ex"
)

// LifeCycle is implemented by resources that are acquired once at startup
// and must be released on every exit path.
type LifeCycle interface {
	Start(ctx context.Context) error
	Close() error
}

type PreStarter interface {
	PreStart(ctx context.Context) error
}

type PostStarter interface {
	PostStart(ctx context.Context) error
}

type PreCloser interface {
	PreClose() error
}

type PostCloser interface {
	PostClose() error
}

// Start runs PreStart, Start and PostStart, skipping hooks lf does not
// implement.
func Start(ctx context.Context, lf LifeCycle) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if pre, ok := lf.(PreStarter); ok {
		if err := pre.PreStart(ctx); err != nil {
			return ex.Cause(err, "PreStart")
		}
	}

	if err := lf.Start(ctx); err != nil {
		return ex.Cause(err, "Start")
	}

	if post, ok := lf.(PostStarter); ok {
		if err := post.PostStart(ctx); err != nil {
			return ex.Cause(err, "PostStart")
		}
	}

	return nil
}

// Close runs PreClose, Close and PostClose. Close is attempted even when
// PreClose fails; all failures are returned together.
func Close(lf LifeCycle) error {
	var preErr, postErr error
	if pre, ok := lf.(PreCloser); ok {
		preErr = ex.Cause(pre.PreClose(), "PreClose")
	}

	if err := lf.Close(); err != nil {
		return ex.Errors(preErr, ex.Cause(err, "Close"))
	}

	if post, ok := lf.(PostCloser); ok {
		postErr = ex.Cause(post.PostClose(), "PostClose")
	}

	return ex.Errors(preErr, postErr)
}
