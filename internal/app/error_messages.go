// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// signup server handlers and the client error mapper.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client matches on them to turn a response body back into a sentinel
// error, so server and client must agree on the wording.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the decoded request fails
	// structural checks (e.g. a missing field name).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnknownField is returned by the field validation endpoint when the
	// requested field is not one of name, email, password, confirmPassword.
	MsgUnknownField = "unknown signup field"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the HMAC of the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgInvalidGzip is returned when a request claims gzip encoding but the
	// body cannot be decompressed.
	MsgInvalidGzip = "invalid gzip data"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
