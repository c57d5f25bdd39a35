package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, cfg *StructuredConfig)
		wantErr bool
	}{
		{
			name: "no flags gives zero config",
			args: nil,
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "server address",
			args: []string{"-a", "127.0.0.1:9000"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
			},
		},
		{
			name: "adapter address and offline",
			args: []string{"-s", "http://remote:8080", "-offline"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://remote:8080", cfg.Adapter.HTTPAddress)
				assert.True(t, cfg.Client.Offline)
			},
		},
		{
			name: "config short flag",
			args: []string{"-c", "/etc/flux.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/flux.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config long flag",
			args: []string{"-config", "/etc/flux.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/flux.json", cfg.JSONFilePath)
			},
		},
		{
			name: "timeouts and keys",
			args: []string{"-request-timeout", "15s", "-shutdown-timeout", "2s", "-hash-key", "k", "-log-level", "warn", "-log-file", "x.log"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, "k", cfg.App.HashKey)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, "x.log", cfg.Client.LogFile)
			},
		},
		{
			name:    "invalid address",
			args:    []string{"-a", "not-an-address"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ipv4", input: "127.0.0.1:80", wantHost: "127.0.0.1", wantPort: 80},
		{name: "empty host", input: ":8080", wantHost: "", wantPort: 8080},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:65536", wantErr: true},
		{name: "bad ip", input: "999.1.1.1:80", wantErr: true},
		{name: "hostname not allowed", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":8080", (&NetAddress{Port: 8080}).String())
}
