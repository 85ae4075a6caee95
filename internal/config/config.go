// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other source. Every later source
// overrides them field by field.
const (
	DefaultDSN            = "linkdir.db"
	DefaultStorageKey     = "linkdir_data"
	DefaultExportDir      = "."
	DefaultExportFileName = "linkdir-export.json"
	DefaultFaviconService = "https://www.google.com/s2/favicons?domain="
	DefaultStatusTimeout  = 3 * time.Second
	DefaultLogFile        = "linkdir.log"
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level configuration container for linkdir.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Export holds file export settings.
	Export Export `envPrefix:"EXPORT_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds presentation-level settings.
type App struct {
	// FaviconService is the URL prefix used to build favicon URLs for links
	// without an icon. The link host is appended to it.
	// Env: APP_FAVICON_SERVICE
	FaviconService string `env:"FAVICON_SERVICE"`

	// StatusTimeout is how long a transient notification stays visible.
	// Env: APP_STATUS_TIMEOUT
	StatusTimeout time.Duration `env:"STATUS_TIMEOUT"`
}

// Storage holds the local persistence settings.
type Storage struct {
	// DSN selects the backend: "memory", "file://<path>" for a JSON file,
	// anything else is a SQLite database path.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Key is the key under which the link document is stored.
	// Env: STORAGE_KEY
	Key string `env:"KEY"`
}

// Export holds file export settings.
type Export struct {
	// Dir is the directory exports are written to.
	// Env: EXPORT_DIR
	Dir string `env:"DIR"`

	// FileName is the fixed name of the export file.
	// Env: EXPORT_FILE_NAME
	FileName string `env:"FILE_NAME"`
}

// Log holds logger output settings.
type Log struct {
	// File is the path of the log file. The terminal belongs to the UI, so
	// logs never go to stdout unless the file cannot be opened.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			FaviconService: DefaultFaviconService,
			StatusTimeout:  DefaultStatusTimeout,
		},
		Storage: Storage{
			DSN: DefaultDSN,
			Key: DefaultStorageKey,
		},
		Export: Export{
			Dir:      DefaultExportDir,
			FileName: DefaultExportFileName,
		},
		Log: Log{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
