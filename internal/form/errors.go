package form

import "errors"

// ErrUnknownField is returned when an event names a field outside the signup form.
var ErrUnknownField = errors.New("unknown form field")
