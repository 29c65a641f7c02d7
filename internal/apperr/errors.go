// Package apperr classifies the failures the data layer can surface so that
// handlers can map each kind to a transport status without string matching.
package apperr

import (
	"errors"
	"fmt"
)

// Kind partitions errors into the four classes callers react to.
type Kind int

const (
	// KindValidation covers malformed or missing input: non-numeric ids,
	// empty names, unparseable prices/quantities/dates, duplicate id/name.
	KindValidation Kind = iota + 1
	// KindNotFound means a referenced product id does not exist.
	KindNotFound
	// KindConflict means insufficient stock for an outbound movement.
	KindConflict
	// KindPersistence means the underlying store failed.
	KindPersistence
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Persistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Msg: msg, Err: err}
}

// KindOf returns the classification of err, or 0 for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
