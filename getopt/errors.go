package getopt

import (
	"errors"
	"fmt"
)

// ErrorType represents error categories for parse failures.
// These categories drive suggestion logic and exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeInvalidSpec     ErrorType = "invalid_specification"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeMissingRequired ErrorType = "missing_required"
	ErrorTypeUnknownFlag     ErrorType = "unknown_flag"
	ErrorTypeUnsupportedType ErrorType = "unsupported_type"
)

// ParseError is returned for every failed parse. Any ParseError means the
// whole parse failed; destinations may have been partially written.
type ParseError struct {
	Type       ErrorType
	Message    string
	Option     string // spec of the option involved, if any
	Token      string // offending argument, if any
	Suggestion string // filled for unknown long flags when suggestions are enabled
	Cause      error
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause (a *ConversionError for invalid values)
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new ParseError with the given type and message
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    errType,
		Message: message,
	}
}

// ConversionError reports text that could not be converted to a destination type.
type ConversionError struct {
	Expected string
	Got      string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%q is not convertible to type %s", e.Got, e.Expected)
}

// IsErrorType reports whether err is a *ParseError of the given type
func IsErrorType(err error, typ ErrorType) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Type == typ
	}
	return false
}

func invalidSpecError(spec, reason string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidSpec,
		Message: "invalid option specification " + fmt.Sprintf("%q", spec) + ": " + reason,
		Option:  spec,
	}
}

func missingValueError(spec, token string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingValue,
		Message: "Expected input after option " + token,
		Option:  spec,
		Token:   token,
	}
}

func missingRequiredError(spec string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingRequired,
		Message: "Required option " + spec + " was not supplied",
		Option:  spec,
	}
}

func unknownFlagError(token, suggestion string) *ParseError {
	return &ParseError{
		Type:       ErrorTypeUnknownFlag,
		Message:    "Unrecognized option " + token,
		Token:      token,
		Suggestion: suggestion,
	}
}

func conversionError(spec, token string, cause error) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidValue,
		Message: cause.Error(),
		Option:  spec,
		Token:   token,
		Cause:   cause,
	}
}
