// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field identifies one input of the signup form. The string value is the
// name used on the wire (JSON keys, API field parameters).
type Field string

const (
	// FieldName is the display name of the new account holder.
	FieldName Field = "name"

	// FieldEmail is the account email address.
	FieldEmail Field = "email"

	// FieldPassword is the primary password input.
	FieldPassword Field = "password"

	// FieldConfirmPassword repeats the password; it is checked against FieldPassword.
	FieldConfirmPassword Field = "confirmPassword"
)

// formFields lists every known field in the order the form renders them.
var formFields = []Field{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
}

// Fields returns the fixed set of signup fields in form order.
// The returned slice is a copy and may be modified by the caller.
func Fields() []Field {
	out := make([]Field, len(formFields))
	copy(out, formFields)
	return out
}

// Valid reports whether f is one of the known signup fields.
func (f Field) Valid() bool {
	for _, known := range formFields {
		if f == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return string(f)
}
