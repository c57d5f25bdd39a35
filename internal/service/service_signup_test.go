// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/internal/validators"
	"github.com/MKhiriev/flux-signup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validValues = models.SignupValues{
	Name:            "Jo",
	Email:           "jo@example.com",
	Password:        "Secret1!",
	ConfirmPassword: "Secret1!",
}

// mockValidator lets tests force validator outcomes.
type mockValidator struct {
	validateFn func(ctx context.Context, i any, fields ...string) error
}

func (m *mockValidator) Validate(ctx context.Context, i any, fields ...string) error {
	if m.validateFn != nil {
		return m.validateFn(ctx, i, fields...)
	}
	return nil
}

func TestSignupService_ValidateField(t *testing.T) {
	tests := []struct {
		name    string
		field   models.Field
		values  models.SignupValues
		want    string
		wantErr error
	}{
		{name: "valid name", field: models.FieldName, values: validValues, want: ""},
		{name: "short name", field: models.FieldName, values: models.SignupValues{Name: "J"}, want: validators.MsgNameTooShort},
		{name: "bad email", field: models.FieldEmail, values: models.SignupValues{Email: "jo@"}, want: validators.MsgEmailInvalid},
		{name: "only the requested field is reported", field: models.FieldEmail, values: models.SignupValues{Email: "jo@example.com"}, want: ""},
		{
			name:   "confirm sees password",
			field:  models.FieldConfirmPassword,
			values: models.SignupValues{Password: "Secret1!", ConfirmPassword: "Secret1?"},
			want:   validators.MsgPasswordsDoNotMatch,
		},
		{name: "unknown field", field: models.Field("age"), wantErr: ErrUnknownField},
	}

	svc := NewSignupService(logger.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ValidateField(context.Background(), tt.field, tt.values)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignupService_ValidateField_UnexpectedValidatorError(t *testing.T) {
	svc := &signupService{
		validator: &mockValidator{validateFn: func(context.Context, any, ...string) error { return assert.AnError }},
		logger:    logger.Nop(),
	}

	_, err := svc.ValidateField(context.Background(), models.FieldName, validValues)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSignupService_ValidateAll(t *testing.T) {
	svc := NewSignupService(logger.Nop())

	got := svc.ValidateAll(context.Background(), models.SignupValues{})
	assert.False(t, got.IsValid)
	assert.Len(t, got.Errors, 4)

	got = svc.ValidateAll(context.Background(), validValues)
	assert.True(t, got.IsValid)
	assert.Empty(t, got.Errors)
}

func TestSignupService_PasswordStrength(t *testing.T) {
	svc := NewSignupService(logger.Nop())

	assert.Equal(t, models.PasswordStrength{}, svc.PasswordStrength(context.Background(), ""))
	assert.Equal(t, models.StrengthStrong, svc.PasswordStrength(context.Background(), "Secret1!").Tier)
}

func TestSignupService_Submit_Valid(t *testing.T) {
	svc := NewSignupService(logger.Nop())

	got, err := svc.Submit(context.Background(), validValues)

	require.NoError(t, err)
	assert.True(t, got.IsValid)
	assert.NotNil(t, got.Errors)
	assert.Empty(t, got.Errors)
}

func TestSignupService_Submit_Invalid(t *testing.T) {
	svc := NewSignupService(logger.Nop())
	values := validValues
	values.Email = "not-an-email"

	got, err := svc.Submit(context.Background(), values)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrValidationFailed)

	var fieldErrs *validators.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, validators.MsgEmailInvalid, fieldErrs.Errors.Get(models.FieldEmail))

	assert.False(t, got.IsValid)
	assert.Equal(t, models.FormErrors{models.FieldEmail: validators.MsgEmailInvalid}, got.Errors)
}

func TestSignupService_Submit_UnexpectedValidatorError(t *testing.T) {
	svc := &signupService{
		validator: &mockValidator{validateFn: func(context.Context, any, ...string) error { return validators.ErrUnsupportedType }},
		logger:    logger.Nop(),
	}

	got, err := svc.Submit(context.Background(), validValues)

	assert.ErrorIs(t, err, validators.ErrUnsupportedType)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, got.IsValid)
}
