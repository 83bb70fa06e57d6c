package argparse

import "errors"

// ExitError is a sentinel used to request a specific exit code from program logic.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodeManager maps errors and parse error categories to process exit codes.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

// NewExitCodeManager creates a manager that maps every parse error to the
// misusage code.
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
	m.codesByType[ErrorTypeUnknownOption] = m.defaults.MisusageError
	m.codesByType[ErrorTypeMissingArgument] = m.defaults.MisusageError
	return m
}

// Define overrides the exit code used for a specific parse error category.
func (e *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	e.codesByType[typ] = code
	return e
}

// Default replaces the manager's default codes. Categories mapped before the
// call keep their codes.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts an error to an exit code according to registered mappings.
// Precedence:
//  1. nil (Success)
//  2. ExitError (requested code)
//  3. ParseError category mapping (Define)
//  4. GeneralError
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	// ExitError wins
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var perr *ParseError
	if errors.As(err, &perr) {
		if code, ok := e.codesByType[perr.Type]; ok {
			return code
		}
	}

	return e.defaults.GeneralError
}

var defaultExitCodes = NewExitCodeManager()

// ExitCode resolves err with the default mappings: 0 for nil, 2 for parse
// errors, the requested code for an *ExitError and 1 for anything else.
func ExitCode(err error) int {
	return defaultExitCodes.Resolve(err)
}
