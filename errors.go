package modelv

import (
	"errors"
	"fmt"

	"github.com/modelv-go/modelv/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType      = "invalid_type"
	CodeRequired         = "required"
	CodeUnknownKey       = "unknown_key"
	CodeUnknownAttribute = "unknown_attribute"
	CodeReservedKey      = "reserved_key"
	CodeParseError       = "parse_error"
	// Chain-rule codes (used by the rules package)
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeTooShort    = "too_short"
	CodeTooLong     = "too_long"
	CodePattern     = "pattern"
	CodeInvalidEnum = "invalid_enum"
)

// ValidationError reports input data that failed coercion, a missing required
// key, or an unknown key. It always carries the offending attribute name and
// is intended to be caught and reported to the caller without crashing the
// process.
type ValidationError struct {
	Key     string // Offending attribute name ("" only for pre-attribute parse errors).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: received type, expected shape, etc.
	Cause   error  // Optional: underlying error.
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code
	}
	if e.Key == "" {
		if e.Hint != "" {
			return fmt.Sprintf("%s: %s (%s)", e.Code, msg, e.Hint)
		}
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	if e.Hint != "" {
		return fmt.Sprintf("%s at %s: %s (%s)", e.Code, e.Key, msg, e.Hint)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Key, msg)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// AsValidationError extracts a *ValidationError using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// SchemaError reports a malformed schema: an unsupported type-expression
// shape, a custom type missing its validation hook, an empty union, or an
// invalid field name. It signals the application must be fixed, not the input
// data, and is not meant to be caught per field.
type SchemaError struct {
	Key     string // Attribute whose expression is malformed ("" for schema-wide problems).
	Message string
}

func (e *SchemaError) Error() string {
	if e.Key == "" {
		return "schema: " + e.Message
	}
	return fmt.Sprintf("schema: %s (key %s)", e.Message, e.Key)
}

// AsSchemaError extracts a *SchemaError using errors.As internally.
func AsSchemaError(err error) (*SchemaError, bool) {
	if err == nil {
		return nil, false
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// newTypeError builds the coercion failure every coercer reports: the key,
// the received Go type, and the expected family.
func newTypeError(key string, v any, want string) *ValidationError {
	return &ValidationError{
		Key:     key,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, nil),
		Hint:    fmt.Sprintf("got %T, want %s compatible", v, want),
	}
}
