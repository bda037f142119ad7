// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator"

	"github.com/MKhiriev/go-pass-vault/models"
)

var structValidator = validator.New()

// validate checks the server-side sections of the configuration.
func (cfg *StructuredConfig) validate() error {
	if err := structValidator.Struct(cfg.App); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if _, err := models.ParseAddress(cfg.App.Administrator); err != nil {
		return fmt.Errorf("%w: administrator: %w", ErrInvalidAppConfigs, err)
	}

	if err := structValidator.Struct(cfg.Storage); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}
	if cfg.Storage.DB.Driver != DefaultDriver && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if err := structValidator.Struct(cfg.Server); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return nil
}

// validateClient checks the settings used by the client SDK.
func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: address must be an absolute URL", ErrInvalidAdapterConfigs)
	}

	return nil
}
