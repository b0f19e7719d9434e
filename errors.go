package argh

import (
	"fmt"

	"github.com/vrtx/argh/internal/fuzzy"
)

// ErrorType classifies registration and parse failures.
type ErrorType string

const (
	// Registration-time errors, returned immediately to the caller.
	ErrorTypeDuplicateKey    ErrorType = "duplicate_key"
	ErrorTypeDuplicateName   ErrorType = "duplicate_name"
	ErrorTypeInvalidKey      ErrorType = "invalid_key"
	ErrorTypeInvalidName     ErrorType = "invalid_name"
	ErrorTypeUnsupportedType ErrorType = "unsupported_type"

	// Parse-time errors, accumulated in the Outcome.
	ErrorTypeUnknownKey      ErrorType = "unknown_key"
	ErrorTypeUnknownName     ErrorType = "unknown_name"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	ErrorTypeOutOfRange      ErrorType = "out_of_range"
)

// RegisterError reports why a parameter could not be added to the registry.
type RegisterError struct {
	Type    ErrorType
	Message string
}

func (e *RegisterError) Error() string {
	return e.Message
}

func registerErrorf(typ ErrorType, format string, args ...any) *RegisterError {
	return &RegisterError{Type: typ, Message: fmt.Sprintf(format, args...)}
}

// ConversionError is a codec decode failure. Details carries the diagnostic
// text of the underlying conversion primitive verbatim.
type ConversionError struct {
	Kind    ErrorType // ErrorTypeInvalidArgument or ErrorTypeOutOfRange
	Details string
}

func (e *ConversionError) Error() string {
	return e.Details
}

// ParseError is one problem recorded during a Parse pass. A single pass can
// accumulate several of these; scanning continues past a bad token where
// safely possible.
type ParseError struct {
	Type    ErrorType
	Message string
	Token   string // offending command line token, when applicable
	Flag    string // bare key or name text, without dashes
	Details string // underlying conversion diagnostic, when applicable

	// Param is the related parameter, when one resolved. Lookup only,
	// never an ownership relation; may be nil.
	Param Param

	// Suggestion is filled in by the ErrorHandler when a close match for
	// an unknown name exists.
	Suggestion string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ErrorHandler enriches parse errors before they are recorded. Suggestions
// are disabled by default; callers opt in through the Args facade.
type ErrorHandler struct {
	suggestNames bool
	maxDistance  int
}

// NewErrorHandler creates an error handler with defaults.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{maxDistance: 2}
}

// SuggestNames enables or disables "did you mean" suggestions for unknown
// long names.
func (eh *ErrorHandler) SuggestNames(enabled bool) *ErrorHandler {
	eh.suggestNames = enabled
	return eh
}

// MaxDistance sets the maximum edit distance for suggestions.
func (eh *ErrorHandler) MaxDistance(distance int) *ErrorHandler {
	eh.maxDistance = distance
	return eh
}

// ProcessError inspects a freshly created parse error and attaches a
// suggestion when one applies. The error is returned for chaining.
func (eh *ErrorHandler) ProcessError(err *ParseError, reg *Registry) *ParseError {
	if err.Type == ErrorTypeUnknownName && eh.suggestNames {
		if best := fuzzy.FindBestName(err.Flag, reg.Names(), eh.maxDistance); best != "" {
			err.Suggestion = fmt.Sprintf("Did you mean '--%s'?", best)
		}
	}
	return err
}
