// Package errorkit holds the error value conventions used across the sorters module.
package errorkit

import (
	"errors"
	"fmt"
)

// Error is a string based error value, which makes it possible to declare sentinel errors as constants.
//
//	const ErrNotSorted errorkit.Error = "sequence is not sorted"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap bundles the Error together with a cause.
// The returned error matches both of them with errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return wrapper{Owner: err, Cause: cause}
}

// F formats a cause and wraps it with the Error.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type wrapper struct {
	Owner Error
	Cause error
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Cause.Error())
}

func (w wrapper) Unwrap() error { return w.Cause }

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target)
}

func (w wrapper) As(target any) bool {
	return errors.As(w.Owner, target)
}
