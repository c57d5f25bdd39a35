// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/flux-signup/internal/service"
)

var errNoSignupService = errors.New("signup service is not configured")

// humanizeServerUnavailableError turns transport failures into a message a
// user can act on. Other errors are shown as they are.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrServerUnavailable) {
		return "The signup server is unavailable. Please try again later."
	}
	if errors.Is(err, service.ErrIntegrityCheckFailed) {
		return "The server could not verify the request. Check the client hash key."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable"
	}

	return err.Error()
}
