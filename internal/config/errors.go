package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or storage key).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidExportConfigs indicates invalid export settings
	// (for example, a file name that is a path or lacks the .json extension).
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidIconsConfigs indicates an invalid favicon service URL.
	ErrInvalidIconsConfigs = errors.New("invalid icons configuration")
	// ErrInvalidUIConfigs indicates invalid terminal UI settings
	// (for example, zero status timeout).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
