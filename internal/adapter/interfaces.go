// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter isolates the services from the operating system resources
// used for import and export: the system clipboard and the local file
// system.
//
// Both are interfaces so that service tests can substitute mocks from
// internal/mock. Failures are wrapped in the sentinel values of errors.go.
package adapter

import (
	"os"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Clipboard reads and writes the system clipboard as plain text.
type Clipboard interface {
	// ReadAll returns the current clipboard text.
	ReadAll() (string, error)

	// WriteAll replaces the clipboard contents with text.
	WriteAll(text string) error
}

// FileSystem is the subset of file operations used by import and export.
type FileSystem interface {
	// ReadFile returns the whole content of the named file.
	ReadFile(name string) ([]byte, error)

	// WriteFile creates or truncates the named file and writes data to it.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// MkdirAll creates dir along with any missing parents.
	MkdirAll(dir string, perm os.FileMode) error
}
