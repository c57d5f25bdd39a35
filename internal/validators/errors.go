package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidationFailed is wrapped by every *FieldErrors so callers can test
	// for "the input was rejected" without inspecting individual messages.
	ErrValidationFailed = errors.New("validation failed")
)
