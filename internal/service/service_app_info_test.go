package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/flux-signup/internal/config"
	"github.com/MKhiriev/flux-signup/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	for _, version := range []string{"", "   "} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())

		assert.Nil(t, svc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
	}
}

func TestGetAppVersion_Trimmed(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: " 2.0.0\n"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "plain semver", version: "3.1.4"},
		{name: "pre-release with build metadata", version: "v1.2.3-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	services, err := NewServices(config.StructuredConfig{App: config.App{Version: "1.0.0"}}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, services.SignupService)
	assert.IsType(t, &SignupLoggingService{}, services.SignupService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_NoVersion(t *testing.T) {
	services, err := NewServices(config.StructuredConfig{}, logger.Nop())
	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
