// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/linkdir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemValidator(t *testing.T) {
	v := NewItemValidator()
	require.NotNil(t, v)
}

func TestItemValidator_Dispatch(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	link := models.NewLink("Go", "https://go.dev")
	assert.NoError(t, v.Validate(ctx, link))
	assert.NoError(t, v.Validate(ctx, &link))
	assert.ErrorIs(t, v.Validate(ctx, "not an item"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Forest{}), ErrUnsupportedType)
}

func TestItemValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    models.Item
		fields  []string
		wantErr error
	}{
		{
			name: "valid link",
			item: models.NewLink("Go", "https://go.dev"),
		},
		{
			name: "valid folder",
			item: models.NewFolder("Work"),
		},
		{
			name:    "blank name",
			item:    models.NewLink("   ", "https://go.dev"),
			wantErr: ErrEmptyName,
		},
		{
			name:    "unknown type",
			item:    models.Item{Name: "x", Type: "Widget"},
			wantErr: ErrInvalidType,
		},
		{
			name:    "link without url",
			item:    models.NewLink("Go", ""),
			wantErr: ErrEmptyURL,
		},
		{
			name:    "folder with url",
			item:    models.Item{Name: "Work", Type: models.TypeFolder, URL: "https://x"},
			wantErr: ErrURLOnFolder,
		},
		{
			name: "link with children",
			item: models.Item{
				Name: "Go", Type: models.TypeLink, URL: "https://go.dev",
				Children: []models.Item{models.NewLink("a", "b")},
			},
			wantErr: ErrChildrenOnLink,
		},
		{
			name:   "scoped to name ignores missing url",
			item:   models.NewLink("Go", ""),
			fields: []string{FieldName},
		},
		{
			name:    "unknown field",
			item:    models.NewLink("Go", "https://go.dev"),
			fields:  []string{"icon"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewItemValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.item, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
