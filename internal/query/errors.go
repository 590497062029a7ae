package query

import (
	"errors"
	"fmt"
)

// #region sentinels
var (
	// ErrSlateTooSmall reports a slate with fewer trajectories than the
	// query kind requires.
	ErrSlateTooSmall = errors.New("slate too small")

	// ErrSlateNotPair reports a weak comparison slate whose size is not
	// exactly two.
	ErrSlateNotPair = errors.New("slate is not a pair")

	// ErrInvalidResponse reports a response outside the query's
	// response set.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrInitialStateMismatch reports a demonstration whose query
	// initial state does not match the trajectory's first state.
	ErrInitialStateMismatch = errors.New("initial state mismatch")
)
// #endregion sentinels

// #region validation-error
// ValidationError wraps a construction-time validation failure. The
// attempted construction is fatal; no partial query or response value
// is returned alongside one of these.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func validationf(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Invalidf builds a ValidationError for a response outside its
// query's response set.
func Invalidf(format string, args ...any) error {
	return validationf(ErrInvalidResponse, format, args...)
}

// MismatchErr builds a ValidationError for a demonstration whose
// query initial state disagrees with the trajectory.
func MismatchErr(msg string) error {
	return &ValidationError{Kind: ErrInitialStateMismatch, Msg: msg}
}
// #endregion validation-error
