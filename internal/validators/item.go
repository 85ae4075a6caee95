package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/linkdir/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of an item.
	FieldName = "name"

	// FieldType targets the Link/Folder discriminator.
	FieldType = "type"

	// FieldURL targets the link address. For folders it checks that no URL
	// is set.
	FieldURL = "url"

	// FieldChildren checks that a link carries no children.
	FieldChildren = "children"
)

type ItemValidator struct {
}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType, FieldURL, FieldChildren}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(item.Name) == "" {
				return ErrEmptyName
			}
		case FieldType:
			if item.Type != models.TypeLink && item.Type != models.TypeFolder {
				return ErrInvalidType
			}
		case FieldURL:
			switch {
			case item.IsLink() && strings.TrimSpace(item.URL) == "":
				return ErrEmptyURL
			case item.IsFolder() && item.URL != "":
				return ErrURLOnFolder
			}
		case FieldChildren:
			if item.IsLink() && len(item.Children) > 0 {
				return ErrChildrenOnLink
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
