package service

import (
	"github.com/MKhiriev/flux-signup/internal/adapter"
	"github.com/MKhiriev/flux-signup/internal/logger"
)

type ClientServices struct {
	SignupService ClientSignupService
}

// NewClientServices wires the client service layer. A nil serverAdapter puts
// the client in offline mode.
func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SignupService: NewClientSignupService(serverAdapter, logger),
	}
}
