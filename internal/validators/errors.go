package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName      = errors.New("name is required")
	ErrInvalidType    = errors.New("invalid item type")
	ErrEmptyURL       = errors.New("link url is required")
	ErrURLOnFolder    = errors.New("folder cannot have a url")
	ErrChildrenOnLink = errors.New("link cannot have children")
)
