// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the use cases of linkdir: persisting the link forest,
// exchanging it with files and the clipboard, and the editing session that
// the terminal UI drives.
package service

import (
	"context"

	"github.com/MKhiriev/linkdir/models"
)

// ForestStorage persists the whole forest under one storage key.
type ForestStorage interface {
	// Save overwrites the stored forest.
	Save(ctx context.Context, f models.Forest) error

	// Load returns the stored forest. A missing key yields an empty forest;
	// undecodable content yields an error wrapping codec.ErrParse.
	Load(ctx context.Context) (models.Forest, error)
}

// InterchangeService moves forests in and out of the application as JSON
// documents.
type InterchangeService interface {
	// ExportToFile writes f as indented JSON into dir and returns the path
	// of the written file.
	ExportToFile(ctx context.Context, f models.Forest, dir string) (string, error)

	// ImportFromFile reads and decodes a .json file.
	ImportFromFile(ctx context.Context, path string) (models.Forest, error)

	// ImportFromClipboard decodes the clipboard text.
	ImportFromClipboard(ctx context.Context) (models.Forest, error)

	// ExportToClipboard writes f as indented JSON to the clipboard.
	ExportToClipboard(ctx context.Context, f models.Forest) error

	// CopyText writes arbitrary text to the clipboard.
	CopyText(ctx context.Context, text string) error
}

// LinkTreeService owns the forest of an editing session. Every successful
// mutation is persisted before it becomes visible through Forest; a failed
// one leaves both the session and the storage untouched.
//
// Mutations return the current forest, which is the unchanged one on error.
type LinkTreeService interface {
	// Open loads the stored forest. It must be called before any mutation.
	Open(ctx context.Context) error

	// Forest returns the current forest.
	Forest() models.Forest

	// Add appends item to the folder parentID (tree.RootID for the root).
	Add(ctx context.Context, parentID string, item models.Item) (models.Forest, error)
	// Edit replaces the fields of node id.
	Edit(ctx context.Context, id string, item models.Item) (models.Forest, error)
	// Delete removes node id and its subtree.
	Delete(ctx context.Context, id string) (models.Forest, error)
	// Move re-parents node id under destParentID.
	Move(ctx context.Context, id, destParentID string) (models.Forest, error)

	// AddItem appends item to the folder at path.
	AddItem(ctx context.Context, path models.Path, item models.Item) (models.Forest, error)
	// EditItem replaces the node at path; the last segment is its current name.
	EditItem(ctx context.Context, path models.Path, item models.Item) (models.Forest, error)
	// DeleteItem removes the node at path.
	DeleteItem(ctx context.Context, path models.Path) (models.Forest, error)
	// MoveItem moves the node at fromPath into the folder at toPath.
	MoveItem(ctx context.Context, fromPath, toPath models.Path) (models.Forest, error)

	// Replace swaps in f wholesale.
	Replace(ctx context.Context, f models.Forest) (models.Forest, error)
	// ClearAll replaces the forest with an empty one.
	ClearAll(ctx context.Context) (models.Forest, error)

	// ImportFromFile replaces the forest with the content of a .json file.
	ImportFromFile(ctx context.Context, path string) (models.Forest, error)
	// ImportFromClipboard replaces the forest with the clipboard content.
	ImportFromClipboard(ctx context.Context) (models.Forest, error)

	// Export writes the current forest into dir and returns the file path.
	Export(ctx context.Context, dir string) (string, error)
	// CopyToClipboard writes the current forest to the clipboard.
	CopyToClipboard(ctx context.Context) error
	// CopyURL writes the normalized URL of link id to the clipboard and
	// returns it.
	CopyURL(ctx context.Context, id string) (string, error)
}
