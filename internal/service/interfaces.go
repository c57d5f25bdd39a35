// Package service holds the signup business layer: the server-side
// SignupService that re-validates every request it receives, and the
// client-side ClientSignupService that validates locally and optionally
// forwards submits to the server.
package service

import (
	"context"

	"github.com/MKhiriev/flux-signup/models"
)

// SignupService validates signup forms on the server.
type SignupService interface {
	// ValidateField returns the current message for field given the whole
	// form ("" when valid). ErrUnknownField is returned for names outside the
	// four signup fields.
	ValidateField(ctx context.Context, field models.Field, values models.SignupValues) (string, error)

	// ValidateAll validates every field at once.
	ValidateAll(ctx context.Context, values models.SignupValues) models.ValidationResult

	// PasswordStrength scores a password.
	PasswordStrength(ctx context.Context, password string) models.PasswordStrength

	// Submit re-validates values. On failure the result carries the messages
	// and the error wraps ErrInvalidDataProvided and *validators.FieldErrors.
	Submit(ctx context.Context, values models.SignupValues) (models.ValidationResult, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SignupServiceWrapper defines middleware composition for SignupService.
// Implementations wrap an existing SignupService to add behavior such as
// logging.
type SignupServiceWrapper interface {
	Wrap(SignupService) SignupService // returns a decorated SignupService applying additional behavior
}
