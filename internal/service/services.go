package service

import (
	"fmt"

	"github.com/MKhiriev/flux-signup/internal/config"
	"github.com/MKhiriev/flux-signup/internal/logger"
)

type Services struct {
	SignupService  SignupService
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	signup := NewSignupLoggingService(logger).Wrap(NewSignupService(logger))

	return &Services{
		SignupService:  signup,
		AppInfoService: appInfo,
	}, nil
}
