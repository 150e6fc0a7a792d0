package fsio

import (
	"errors"
)

var (
	// ErrIOError is the underlying error of every failure caused by the
	// file system, for example a missing path or a permission problem.
	ErrIOError = errors.New("io error")
	// ErrLogicalError is the underlying error of failures that are not
	// caused by the file system. No operation in this package currently
	// produces it; it completes the error taxonomy for callers.
	ErrLogicalError = errors.New("logical error")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newIOError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrIOError,
		msg:        msg,
		cause:      cause,
	}
}

func newLogicalError(msg string) error {
	return &wrapError{
		underlying: ErrLogicalError,
		msg:        msg,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}

// Cause returns the operating system error underlying err, or nil when err
// carries none. It is a read-only diagnostic accessor; use errors.Is with
// ErrIOError or ErrLogicalError to classify err.
func Cause(err error) error {
	var wrapped *wrapError
	if errors.As(err, &wrapped) {
		return wrapped.cause
	}
	return nil
}
