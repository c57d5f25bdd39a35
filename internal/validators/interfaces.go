// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the signup form rules shared by every
// presentation layer (terminal form, HTTP API, server-side resubmit check).
//
// Core concepts:
//   - field validators: pure functions returning "" or a human-readable message;
//   - password strength: an additive score bucketed into weak/medium/strong;
//   - Validator: a generic interface for transport layers that want an error
//     value instead of per-field strings, with optional field-level scoping.
//
// Nothing in this package keeps state, performs I/O, or panics on any input.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
