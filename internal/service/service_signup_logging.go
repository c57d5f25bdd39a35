package service

import (
	"context"
	"time"

	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/MKhiriev/flux-signup/models"
	"github.com/rs/zerolog"
)

// SignupLoggingService decorates a SignupService with request logging.
// Failed validation is a user error, so it is logged at Info; only
// unexpected errors reach Error.
type SignupLoggingService struct {
	inner SignupService

	logger *logger.Logger
}

func NewSignupLoggingService(logger *logger.Logger) SignupServiceWrapper {
	return &SignupLoggingService{logger: logger}
}

func (s *SignupLoggingService) Wrap(inner SignupService) SignupService {
	s.inner = inner
	return s
}

func (s *SignupLoggingService) ValidateField(ctx context.Context, field models.Field, values models.SignupValues) (string, error) {
	start := time.Now()
	msg, err := s.inner.ValidateField(ctx, field, values)

	log := s.log(ctx)
	if err != nil {
		log.Info().Err(err).Str("field", field.String()).Msg("field validation rejected")
		return msg, err
	}

	log.Debug().
		Str("field", field.String()).
		Bool("valid", msg == "").
		Dur("duration", time.Since(start)).
		Msg("field validated")
	return msg, nil
}

func (s *SignupLoggingService) ValidateAll(ctx context.Context, values models.SignupValues) models.ValidationResult {
	start := time.Now()
	result := s.inner.ValidateAll(ctx, values)

	s.log(ctx).Debug().
		Bool("is_valid", result.IsValid).
		Int("error_count", len(result.Errors)).
		Dur("duration", time.Since(start)).
		Msg("form validated")
	return result
}

func (s *SignupLoggingService) PasswordStrength(ctx context.Context, password string) models.PasswordStrength {
	strength := s.inner.PasswordStrength(ctx, password)

	// the password itself never reaches the log
	s.log(ctx).Debug().
		Int("score", strength.Score).
		Str("tier", string(strength.Tier)).
		Msg("password scored")
	return strength
}

func (s *SignupLoggingService) Submit(ctx context.Context, values models.SignupValues) (models.ValidationResult, error) {
	start := time.Now()
	result, err := s.inner.Submit(ctx, values)

	log := s.log(ctx)
	switch {
	case err == nil:
		log.Debug().Dur("duration", time.Since(start)).Msg("signup submit passed")
	case !result.IsValid && len(result.Errors) > 0:
		log.Info().Err(err).Any("errors", result.Errors).Msg("signup submit rejected")
	default:
		log.Error().Err(err).Msg("signup submit failed")
	}
	return result, err
}

// log prefers the request-scoped logger (it carries the trace ID) and falls
// back to the service logger outside a request.
func (s *SignupLoggingService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
