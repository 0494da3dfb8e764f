package dispatch

import "errors"

type ErrKind string

const (
	ErrPrecondition   ErrKind = "precondition"
	ErrExternal       ErrKind = "external-failure"
	ErrBinaryNotFound ErrKind = "binary-not-found"
	ErrIo             ErrKind = "io-failure"
)

// Error is a classified dispatch failure. None of the kinds are retried;
// the remote command is not safely idempotent.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // underlying cause, set for io-failure
}

func (e *Error) Error() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the classified kind carried by err, or "" if err is not
// a dispatch error.
func KindOf(err error) ErrKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
