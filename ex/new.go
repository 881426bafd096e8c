package ex

import (
	"errors"
	"fmt"
)

func New(vv ...any) error {
	if len(vv) == 0 {
		return nil
	}

	return errors.New(fmt.Sprint(vv...))
}

// Cause wraps err with a short description of what was being done.
// The result still matches err under errors.Is.
func Cause(err error, due string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s : %w", due, err)
}

func Causef(err error, format string, args ...any) error {
	return Cause(err, fmt.Sprintf(format, args...))
}
