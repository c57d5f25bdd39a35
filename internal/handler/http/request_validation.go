// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/flux-signup/models"
	"github.com/go-playground/validator/v10"
)

// signupFieldTag is the struct tag rule that accepts only the four signup
// field names (see models.FieldValidationRequest).
const signupFieldTag = "signup_field"

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(signupFieldTag, func(fl validator.FieldLevel) bool {
		return models.Field(fl.Field().String()).Valid()
	})
	return v
}
