package service

import "errors"

var (
	// ErrResource wraps failures of the clipboard or the file system.
	ErrResource = errors.New("resource unavailable")

	// ErrUnsupportedFile is returned when importing a file that is not .json.
	ErrUnsupportedFile = errors.New("unsupported file type")

	// ErrNoOpMove is returned when an item is dropped onto the folder that
	// already contains it.
	ErrNoOpMove = errors.New("item is already in the destination folder")

	// ErrInvalidItem wraps validation failures of user input.
	ErrInvalidItem = errors.New("invalid item")

	// ErrNotOpened is returned by mutations issued before Open.
	ErrNotOpened = errors.New("link tree is not opened")
)
