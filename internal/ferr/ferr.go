// Package ferr defines the error taxonomy shared by the threshold signature
// packages. Every failure that signing or combination detects itself
// carries one of a fixed set of Kinds so callers can pattern-match on it
// instead of string-matching error text; errors from the random source are
// returned as they come.
package ferr

import (
	"errors"
	"fmt"
)

// Kind identifies which failure mode produced an Error.
type Kind int

const (
	// InvalidConfig means t < 1, n < t, or t > n at setup.
	InvalidConfig Kind = iota
	// UnknownParty means a party_id fell outside [1, n].
	UnknownParty
	// InsufficientSigners means fewer than t partials were supplied for combination.
	InsufficientSigners
	// InconsistentNonce means ECDSA partials disagreed on r.
	InconsistentNonce
	// InvalidInput covers duplicate signer ids, a zero modular-inverse request,
	// or a malformed curve point.
	InvalidInput
	// InvalidNonce means an ECDSA signing round has no usable nonce: the
	// round has already ended. A sampled k that yields r = 0 is redrawn
	// inside the round and is not reported.
	InvalidNonce
)

func (k Kind) String() string {
	switch k {
	case InvalidConfig:
		return "InvalidConfig"
	case UnknownParty:
		return "UnknownParty"
	case InsufficientSigners:
		return "InsufficientSigners"
	case InconsistentNonce:
		return "InconsistentNonce"
	case InvalidInput:
		return "InvalidInput"
	case InvalidNonce:
		return "InvalidNonce"
	default:
		return "Unknown"
	}
}

// Error is the typed error returned by every core package in this module.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err is (or wraps) a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
