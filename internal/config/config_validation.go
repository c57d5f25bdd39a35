// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies the
// constraints declared in its `validate` struct tags. Violations are mapped
// onto the group sentinel (ErrInvalidAppConfigs, ErrInvalidServerConfigs,
// ErrInvalidAdapterConfigs) of the first failing field.
func (cfg *StructuredConfig) validate() error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("error validating config: %w", err)
	}

	first := fieldErrs[0]
	ns := first.StructNamespace()
	switch {
	case strings.HasPrefix(ns, "StructuredConfig.App."):
		return fmt.Errorf("%w: %s", ErrInvalidAppConfigs, first.Error())
	case strings.HasPrefix(ns, "StructuredConfig.Server."):
		return fmt.Errorf("%w: %s", ErrInvalidServerConfigs, first.Error())
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAdapterConfigs, first.Error())
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Offline {
		return nil
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
