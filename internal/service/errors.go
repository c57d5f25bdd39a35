package service

import "errors"

var (
	// ErrInvalidDataProvided marks a submitted form that failed validation.
	// The wrapped chain also carries a *validators.FieldErrors.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUnknownField        = errors.New("unknown signup field")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrIntegrityCheckFailed = errors.New("integrity check failed")
	ErrSubmitOnServer       = errors.New("error submitting signup on server")
	ErrServerUnavailable    = errors.New("signup server unavailable")
	ErrOfflineMode          = errors.New("client is in offline mode")
)
