package getopt

import (
	"errors"
	"reflect"
)

// ExitError is a sentinel used to request a specific exit code.
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
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps parse errors to process exit codes.
type ExitCodeManager struct {
	codesByType  map[reflect.Type]int
	codesByParse map[ErrorType]int
	defaults     ExitCodeDefaults
}

// NewExitCodeManager returns a manager with the common mappings prewired
func NewExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType:  make(map[reflect.Type]int),
		codesByParse: make(map[ErrorType]int),
		defaults:     defaultExitDefaults(),
	}
	m.prewire()
	return m
}

func (e *ExitCodeManager) prewire() {
	e.codesByParse[ErrorTypeUnknownFlag] = e.defaults.MisusageError
	e.codesByParse[ErrorTypeMissingValue] = e.defaults.MisusageError
	e.codesByParse[ErrorTypeMissingRequired] = e.defaults.MisusageError
	e.codesByParse[ErrorTypeInvalidValue] = e.defaults.ValidationError
	e.codesByParse[ErrorTypeInvalidSpec] = e.defaults.GeneralError
	e.codesByParse[ErrorTypeUnsupportedType] = e.defaults.GeneralError
}

// DefineError maps a concrete error value (by its dynamic type) to an exit
// code. It is consulted after ParseError categories.
func (e *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return e
	}
	e.codesByType[reflect.TypeOf(err)] = code
	return e
}

// DefineParse overrides the exit code used for a parse error category
func (e *ExitCodeManager) DefineParse(typ ErrorType, code int) *ExitCodeManager {
	e.codesByParse[typ] = code
	return e
}

// Default replaces the default codes and re-derives the category mappings
// from them. Call it before DefineParse.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	e.prewire()
	return e
}

// Resolve converts an error to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. ParseError category mapping (DefineParse)
//  3. Concrete error type mapping (DefineError)
//  4. Default codes
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		if code, ok := e.codesByParse[pe.Type]; ok {
			return code
		}
	}

	for t, code := range e.codesByType {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}

	return e.defaults.GeneralError
}
