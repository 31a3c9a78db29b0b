package cm256

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Status is the stable integer status code a caller ported from a C ABI
// can compare directly, per spec.md §6.
type Status int

const (
	StatusSuccess          Status = 0
	StatusInvalidParameter Status = -1
	StatusSizeExceeded     Status = -2
	StatusNullInput        Status = -3
	StatusMalformedInput   Status = -5
	StatusVersionMismatch  Status = -10
)

// statusError pairs a sentinel error with its stable status code so
// StatusOf can recover the code from a wrapped error.
type statusError struct {
	status Status
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

// Format delegates to the wrapped error so that %+v reaches the
// github.com/pkg/errors formatter and prints its stack trace.
func (e *statusError) Format(s fmt.State, verb rune) {
	if f, ok := e.err.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.err.Error())
}

func newStatusError(status Status, err error) *statusError {
	return &statusError{status: status, err: err}
}

var (
	// ErrInvalidParameter: non-positive k, m, or blockBytes.
	ErrInvalidParameter = errors.New("cm256: invalid parameter")
	// ErrSizeExceeded: k+m > 256.
	ErrSizeExceeded = errors.New("cm256: originalCount+recoveryCount exceeds 256")
	// ErrNullInput: a required array/slice reference is nil.
	ErrNullInput = errors.New("cm256: required input is nil")
	// ErrMalformedInput: duplicate original index, or index >= k+m.
	ErrMalformedInput = errors.New("cm256: malformed block descriptors")
	// ErrVersionMismatch: Init called with an unrecognized version token.
	ErrVersionMismatch = errors.New("cm256: version mismatch")
	// ErrOutOfMemory: decoder matrix allocation failed.
	ErrOutOfMemory = errors.New("cm256: out of memory")
)

var statusBySentinel = map[error]Status{
	ErrInvalidParameter: StatusInvalidParameter,
	ErrSizeExceeded:     StatusSizeExceeded,
	ErrNullInput:        StatusNullInput,
	ErrMalformedInput:   StatusMalformedInput,
	ErrVersionMismatch:  StatusVersionMismatch,
	ErrOutOfMemory:      StatusInvalidParameter, // allocation failure has no dedicated negative code beyond InvalidParameter in spec.md's table
}

// wrapf attaches the stable Status and call-site context (via
// github.com/pkg/errors, so %+v prints a stack trace in debug builds) to a
// sentinel error without disturbing errors.Is/errors.As against it.
func wrapf(sentinel error, format string, args ...interface{}) error {
	status, ok := statusBySentinel[sentinel]
	if !ok {
		status = StatusInvalidParameter
	}
	return newStatusError(status, pkgerrors.Wrapf(sentinel, format, args...))
}

// StatusOf recovers the stable status code from an error returned by this
// package. Returns StatusSuccess for a nil error and StatusInvalidParameter
// for any non-nil error this package did not itself produce.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.status
	}
	return StatusInvalidParameter
}
