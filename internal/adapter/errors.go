package adapter

import "errors"

var (
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrClipboardRead        = errors.New("clipboard read failed")
	ErrClipboardWrite       = errors.New("clipboard write failed")
	ErrFileRead             = errors.New("file read failed")
	ErrFileWrite            = errors.New("file write failed")
)
