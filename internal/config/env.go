// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Fields are mapped via
// the `env` and `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom populates cfg from environ. Surrounding whitespace is trimmed
// from every value, so "SERVER_REQUEST_TIMEOUT= 5s" still parses.
func parseEnvFrom(cfg any, environ map[string]string) error {
	trimmed := make(map[string]string, len(environ))
	for k, v := range environ {
		trimmed[k] = strings.TrimSpace(v)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: trimmed}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
