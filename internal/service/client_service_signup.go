package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/flux-signup/internal/adapter"
	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/models"
)

type clientSignupService struct {
	local   SignupService
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientSignupService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSignupService {
	return &clientSignupService{
		local:   NewSignupService(logger),
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (c *clientSignupService) Offline() bool {
	return c.adapter == nil
}

func (c *clientSignupService) ValidateField(ctx context.Context, field models.Field, values models.SignupValues) (string, error) {
	return c.local.ValidateField(ctx, field, values)
}

func (c *clientSignupService) ValidateAll(ctx context.Context, values models.SignupValues) models.ValidationResult {
	return c.local.ValidateAll(ctx, values)
}

func (c *clientSignupService) PasswordStrength(ctx context.Context, password string) models.PasswordStrength {
	return c.local.PasswordStrength(ctx, password)
}

func (c *clientSignupService) Submit(ctx context.Context, values models.SignupValues) (models.ValidationResult, error) {
	result, err := c.local.Submit(ctx, values)
	if err != nil {
		return result, err
	}

	if c.Offline() {
		c.logger.Info().Str("func", "*clientSignupService.Submit").Msg("signup validated locally (offline)")
		return result, nil
	}

	serverResult, err := c.adapter.Submit(ctx, values)
	if err != nil {
		mapped := mapAdapterError(err)
		c.logger.Err(err).Str("func", "*clientSignupService.Submit").Msg("server did not accept signup")

		if errors.Is(mapped, ErrInvalidDataProvided) {
			return serverResult, mapped
		}
		return models.ValidationResult{}, mapped
	}

	c.logger.Info().Str("func", "*clientSignupService.Submit").Msg("signup accepted by server")
	return serverResult, nil
}

func (c *clientSignupService) ServerVersion(ctx context.Context) (string, error) {
	if c.Offline() {
		return "", ErrOfflineMode
	}

	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("error getting server version: %w", mapAdapterError(err))
	}
	return version, nil
}
