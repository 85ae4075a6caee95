// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/linkdir/internal/adapter"
	"github.com/MKhiriev/linkdir/internal/codec"
	"github.com/MKhiriev/linkdir/internal/service"
	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/internal/validators"
)

// errorMessage turns a service error into a short user-facing sentence.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, codec.ErrParse):
		return "Invalid JSON"
	case errors.Is(err, service.ErrUnsupportedFile):
		return "Only .json files can be imported"
	case errors.Is(err, adapter.ErrClipboardUnavailable):
		return "Clipboard is not available on this system"
	case errors.Is(err, service.ErrResource):
		return "Could not access the file or clipboard"
	case errors.Is(err, service.ErrNoOpMove):
		return "Item is already in that folder"
	case errors.Is(err, tree.ErrMoveIntoSelf):
		return "A folder cannot be moved into itself"
	case errors.Is(err, tree.ErrNotAFolder):
		return "Target is not a folder"
	case errors.Is(err, tree.ErrPathNotFound), errors.Is(err, tree.ErrIDNotFound):
		return "Item no longer exists"
	case errors.Is(err, tree.ErrKindMismatch):
		return "Links and folders cannot be converted into each other"
	case errors.Is(err, validators.ErrEmptyName):
		return "Name is required"
	case errors.Is(err, validators.ErrEmptyURL):
		return "URL is required"
	case errors.Is(err, validators.ErrURLOnFolder):
		return "Folders cannot have a URL"
	case errors.Is(err, service.ErrInvalidItem):
		return "Invalid item"
	}

	return err.Error()
}
