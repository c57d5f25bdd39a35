package service

import (
	"context"

	"github.com/MKhiriev/flux-signup/models"
)

// ClientSignupService defines the client-side contract behind the signup
// page. Field checks and strength scoring always run locally so feedback is
// immediate; only Submit and ServerVersion reach the server, and only when
// the client is online.
type ClientSignupService interface {
	// ValidateField returns the local message for field ("" when valid).
	ValidateField(ctx context.Context, field models.Field, values models.SignupValues) (string, error)

	// ValidateAll validates every field locally.
	ValidateAll(ctx context.Context, values models.SignupValues) models.ValidationResult

	// PasswordStrength scores a password locally.
	PasswordStrength(ctx context.Context, password string) models.PasswordStrength

	// Submit validates locally and, when online and valid, posts the form to
	// the server. Server-side rejections come back as a result with
	// per-field messages and an error wrapping ErrInvalidDataProvided.
	Submit(ctx context.Context, values models.SignupValues) (models.ValidationResult, error)

	// ServerVersion fetches the server version. Returns ErrOfflineMode when
	// the client runs without a server.
	ServerVersion(ctx context.Context) (string, error)

	// Offline reports whether the client runs without a server.
	Offline() bool
}
