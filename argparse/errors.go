package argparse

import (
	"errors"
	"fmt"
)

// ErrorType represents parse error categories.
// These categories drive exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeOK              ErrorType = "ok"
	ErrorTypeUnknownOption   ErrorType = "unknown_option"
	ErrorTypeMissingArgument ErrorType = "missing_argument"
)

// ParseError is returned by Parse when the arguments cannot be matched
// against the registered options
type ParseError struct {
	Type ErrorType

	// Option is the offending option as typed by the user:
	// "-x" for a short option, "--name" for a long one.
	Option string

	// Suggestion is the closest registered long option, eg. "--verbose".
	// Only filled for unknown long options when suggestions are enabled.
	Suggestion string
}

func (e *ParseError) Error() string {
	switch e.Type {
	case ErrorTypeUnknownOption:
		return "unknown option '" + e.Option + "'"
	case ErrorTypeMissingArgument:
		return "option '" + e.Option + "' requires an argument"
	case ErrorTypeOK:
		return "ok"
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Option)
}

// ErrorTypeOf returns the ErrorType carried by err.
// A nil error reports ErrorTypeOK and an error that does not wrap a
// *ParseError reports "".
func ErrorTypeOf(err error) ErrorType {
	if err == nil {
		return ErrorTypeOK
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Type
	}
	return ""
}

func newUnknownOption(name string) *ParseError {
	return &ParseError{Type: ErrorTypeUnknownOption, Option: name}
}

func newMissingArgument(name string) *ParseError {
	return &ParseError{Type: ErrorTypeMissingArgument, Option: name}
}
