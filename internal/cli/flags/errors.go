package flags

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind string

const (
	// KindMalformed covers a value flag without a value and a missing or
	// surplus subcommand positional.
	KindMalformed ErrorKind = "malformed_arguments"
	// KindUnrecognized covers a leading token that is neither a declared flag
	// nor acceptable as a script path.
	KindUnrecognized ErrorKind = "unrecognized_token"
)

// UsageError is returned by Parse. It carries the usage line so the caller
// can print it next to the message before exiting non-zero.
type UsageError struct {
	Kind    ErrorKind
	Message string
	Token   string // offending token, if any
	Usage   string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Message
}

// Is matches on Kind, so errors.Is(err, ErrMalformedArguments) works for any
// message.
func (e *UsageError) Is(target error) bool {
	t, ok := target.(*UsageError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrMalformedArguments = &UsageError{Kind: KindMalformed, Message: "malformed arguments"}
	ErrUnrecognizedToken  = &UsageError{Kind: KindUnrecognized, Message: "unrecognized argument"}
)

func malformed(token, format string, args ...any) *UsageError {
	return &UsageError{
		Kind:    KindMalformed,
		Message: fmt.Sprintf(format, args...),
		Token:   token,
		Usage:   UsageLine,
	}
}

func unrecognized(token string) *UsageError {
	return &UsageError{
		Kind:    KindUnrecognized,
		Message: fmt.Sprintf("Found argument '%s' which wasn't expected, or isn't valid in this context", token),
		Token:   token,
		Usage:   UsageLine,
	}
}

// AsUsageError extracts a *UsageError from err.
func AsUsageError(err error) (*UsageError, bool) {
	var ue *UsageError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
