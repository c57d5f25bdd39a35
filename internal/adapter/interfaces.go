// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the signup server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnprocessableEntity] for 422, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/flux-signup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the signup
// server. Implementations are responsible for serialisation, integrity
// headers, and mapping transport-level errors to the sentinel values defined
// in this package.
type ServerAdapter interface {
	// ValidateField asks the server for the current message of a single
	// field given the whole form. An empty string means the field is valid.
	ValidateField(ctx context.Context, field models.Field, values models.SignupValues) (string, error)

	// Validate asks the server to validate every field at once.
	Validate(ctx context.Context, values models.SignupValues) (models.ValidationResult, error)

	// Strength asks the server to score a password.
	Strength(ctx context.Context, password string) (models.PasswordStrength, error)

	// Submit sends a completed form. When the server rejects it with 422 the
	// decoded per-field result is returned together with an error wrapping
	// [ErrUnprocessableEntity], so callers can display the server's messages.
	Submit(ctx context.Context, values models.SignupValues) (models.ValidationResult, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
