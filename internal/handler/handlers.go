package handler

import (
	"github.com/MKhiriev/flux-signup/internal/config"
	"github.com/MKhiriev/flux-signup/internal/handler/http"
	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
