// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/flux-signup/internal/adapter"
	"github.com/MKhiriev/flux-signup/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnprocessableEntity):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgIntegrityCheckFailed:
			return ErrIntegrityCheckFailed
		case app.MsgUnknownField:
			return ErrUnknownField
		}
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrSubmitOnServer, err)

	case errors.Is(err, adapter.ErrServerUnavailable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	// transport failures (refused connection, timeout) never reached a handler
	if !strings.HasPrefix(err.Error(), "http ") {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrSubmitOnServer, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
