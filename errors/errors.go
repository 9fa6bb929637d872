package errors

import (
	// Go Internal Packages
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind classifies an error for dispatch decisions and metrics labels.
type Kind uint8

const (
	Other Kind = iota
	Invalid
	NotFound
	Locked
	InsufficientFunds
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case NotFound:
		return "not_found"
	case Locked:
		return "locked"
	case InsufficientFunds:
		return "insufficient_funds"
	default:
		return "other"
	}
}

// Error is the kinded error type used across the application.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// E builds an *Error from a kind, a message and an optional wrapped error.
func E(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of the outermost *Error in err's chain,
// or Other if there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// Is reports whether any error in err's chain carries the given kind.
func Is(kind Kind, err error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// ValidationErrors collects per-field validation failures.
type ValidationErrors struct {
	fields []string
}

// ValidationErrs returns an empty collector.
func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{}
}

// Add records a failure for the given field.
func (v *ValidationErrors) Add(field, msg string) {
	v.fields = append(v.fields, fmt.Sprintf("%s: %s", field, msg))
}

// Err returns nil when no failure was recorded, an Invalid error otherwise.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return E(Invalid, strings.Join(v.fields, "; "), nil)
}
