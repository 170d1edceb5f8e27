// Package aocerr holds the failure classes shared by the puzzle solvers.
// Every solver error carries a Kind so the CLI can report what went wrong
// with the input without string matching.
package aocerr

import (
	"errors"
	"fmt"
)

// Kind classifies why a computation could not produce an answer.
type Kind string

const (
	// KindInvalidInput indicates a character or token outside the expected alphabet.
	KindInvalidInput Kind = "INVALID_INPUT"

	// KindParse indicates a grammar failure with position and rule context.
	KindParse Kind = "PARSE_ERROR"

	// KindStructural indicates the input shape breaks a data-structure invariant.
	KindStructural Kind = "STRUCTURAL_ERROR"

	// KindCapacity indicates the disk-space preconditions of a search do not hold.
	KindCapacity Kind = "CAPACITY_ERROR"

	// KindEmptyInput indicates an aggregate was requested over zero elements.
	KindEmptyInput Kind = "EMPTY_INPUT"

	// KindNotFound indicates a required element does not exist in the input.
	KindNotFound Kind = "NOT_FOUND"

	// KindUnknown is reported for errors that carry no kind.
	KindUnknown Kind = "UNKNOWN"
)

// Error is a classified solver failure.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorKind implements Kinded.
func (e *Error) ErrorKind() Kind {
	return e.Kind
}

// Kinded is implemented by errors that know their own Kind.
type Kinded interface {
	ErrorKind() Kind
}

// New returns a classified error with a formatted message.
func New(kind Kind, op string, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies err. It returns nil when err is nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the Kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var k Kinded
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return KindUnknown
}

// Is reports whether err's chain carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
