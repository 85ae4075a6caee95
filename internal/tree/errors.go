package tree

import "errors"

// Errors returned by tree operations. Every failing operation also returns
// the input forest unchanged, so callers may ignore the error to get the
// lenient "no-op on bad path" behaviour.
var (
	// ErrPathNotFound is returned when a name path does not resolve.
	ErrPathNotFound = errors.New("path not found")

	// ErrIDNotFound is returned when no node carries the requested ID.
	ErrIDNotFound = errors.New("item id not found")

	// ErrEmptyPath is returned when an operation needs a node but got the
	// root path.
	ErrEmptyPath = errors.New("empty path does not address an item")

	// ErrNotAFolder is returned when a container is required but the
	// addressed node is a link.
	ErrNotAFolder = errors.New("item is not a folder")

	// ErrMoveIntoSelf is returned when the move destination is the moved
	// node itself or one of its descendants.
	ErrMoveIntoSelf = errors.New("cannot move an item into itself or its descendants")

	// ErrKindMismatch is returned when an edit would turn a link into a
	// folder or vice versa.
	ErrKindMismatch = errors.New("edited item type differs from the existing one")
)
