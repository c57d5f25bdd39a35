package http

import (
	"github.com/MKhiriev/flux-signup/internal/config"
	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/internal/service"
	"github.com/MKhiriev/flux-signup/internal/utils"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	services *service.Services

	hasher   *utils.Hasher
	validate *validator.Validate
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("integrity_check", cfg.HashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(cfg.HashKey),
		validate: newRequestValidator(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
