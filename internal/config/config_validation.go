// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig]. Only the log level can be
// checked without knowing which view the caller needs.
func (cfg *StructuredConfig) validate() error {
	if cfg.Log.Level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.TrimSpace(cfg.Storage.Key) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Export.FileName == "" ||
		filepath.Base(cfg.Export.FileName) != cfg.Export.FileName ||
		!strings.EqualFold(filepath.Ext(cfg.Export.FileName), ".json") {
		return ErrInvalidExportConfigs
	}

	if !strings.HasPrefix(cfg.Icons.FaviconService, "http") {
		return ErrInvalidIconsConfigs
	}

	if cfg.UI.StatusTimeout <= 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
