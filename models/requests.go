// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldValidationRequest asks the server to validate a single field, as a form
// does on blur. Values carries the whole form because confirmPassword depends
// on password.
type FieldValidationRequest struct {
	Field  Field        `json:"field" validate:"required,signup_field"`
	Values SignupValues `json:"values"`
}

// FieldValidationResponse is the answer to a FieldValidationRequest.
// Error is empty when the field is valid.
type FieldValidationResponse struct {
	Field Field  `json:"field"`
	Error string `json:"error"`
}

// ValidateRequest carries the full form for whole-form validation or submit.
type ValidateRequest struct {
	Values SignupValues `json:"values"`
}

// StrengthRequest carries the password to score.
type StrengthRequest struct {
	Password string `json:"password"`
}
