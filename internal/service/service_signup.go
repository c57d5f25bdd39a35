// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/internal/validators"
	"github.com/MKhiriev/flux-signup/models"
)

// signupService is the concrete implementation of SignupService.
// It never trusts the caller: every operation runs the same field rules the
// client runs, through a validators.Validator.
type signupService struct {
	validator validators.Validator

	logger *logger.Logger
}

// NewSignupService constructs a SignupService backed by the signup validator.
func NewSignupService(logger *logger.Logger) SignupService {
	return &signupService{
		validator: validators.NewSignupValidator(),
		logger:    logger,
	}
}

// ValidateField runs the rule for a single field.
//
// The validator is scoped to field, so only that field's message is
// produced; confirmPassword still sees values.Password.
func (s *signupService) ValidateField(ctx context.Context, field models.Field, values models.SignupValues) (string, error) {
	err := s.validator.Validate(ctx, values, field.String())
	if err == nil {
		return "", nil
	}

	var fieldErrs *validators.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return fieldErrs.Errors.Get(field), nil
	case errors.Is(err, validators.ErrUnknownField):
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	default:
		return "", fmt.Errorf("error validating field %q: %w", field, err)
	}
}

func (s *signupService) ValidateAll(_ context.Context, values models.SignupValues) models.ValidationResult {
	return validators.ValidateAll(values)
}

func (s *signupService) PasswordStrength(_ context.Context, password string) models.PasswordStrength {
	return validators.PasswordStrength(password)
}

// Submit re-validates the whole form.
//
// Returns:
//   - {Errors: {}, IsValid: true}, nil when every field passes. The signup is
//     only logged; creating the account is not this service's job.
//   - the failing messages and an error wrapping both ErrInvalidDataProvided
//     and the *validators.FieldErrors otherwise.
func (s *signupService) Submit(ctx context.Context, values models.SignupValues) (models.ValidationResult, error) {
	log := logger.FromContext(ctx)

	err := s.validator.Validate(ctx, values)
	if err != nil {
		var fieldErrs *validators.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return models.ValidationResult{}, fmt.Errorf("error validating signup: %w", err)
		}

		return models.ValidationResult{
			Errors:  fieldErrs.Errors.Clone(),
			IsValid: false,
		}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, fieldErrs)
	}

	log.Info().Str("func", "*signupService.Submit").
		Str("name", values.Name).
		Str("email", values.Email).
		Msg("signup accepted")

	return models.ValidationResult{Errors: models.FormErrors{}, IsValid: true}, nil
}
