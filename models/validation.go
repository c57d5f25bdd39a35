// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FormErrors maps a field to its current error message.
// A missing key or an empty message means the field is valid.
type FormErrors map[Field]string

// Get returns the message for f, or "" when f is valid.
func (e FormErrors) Get(f Field) string {
	if e == nil {
		return ""
	}
	return e[f]
}

// HasErrors reports whether at least one field carries a non-empty message.
func (e FormErrors) HasErrors() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of e without empty entries.
// The result is never nil.
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for f, msg := range e {
		if msg != "" {
			out[f] = msg
		}
	}
	return out
}

// TouchedMap records which fields the user has visited and left, or that
// were part of a submit attempt. Only touched fields display their errors.
type TouchedMap map[Field]bool

// Clone returns an independent copy of t. The result is never nil.
func (t TouchedMap) Clone() TouchedMap {
	out := make(TouchedMap, len(t))
	for f, touched := range t {
		out[f] = touched
	}
	return out
}

// ValidationResult is the outcome of validating the whole form.
type ValidationResult struct {
	// Errors holds only the fields that failed; valid fields are absent.
	Errors FormErrors `json:"errors"`

	// IsValid is true iff no field has an error.
	IsValid bool `json:"is_valid"`
}

// FormState is a snapshot of a form instance. Snapshots are detached copies:
// changing them never affects the form they were taken from.
type FormState struct {
	Values  SignupValues `json:"values"`
	Touched TouchedMap   `json:"touched"`
	Errors  FormErrors   `json:"errors"`
	IsValid bool         `json:"is_valid"`
}
