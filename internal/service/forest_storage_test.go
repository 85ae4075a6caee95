// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/linkdir/internal/codec"
	"github.com/MKhiriev/linkdir/internal/logger"
	"github.com/MKhiriev/linkdir/internal/mock"
	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/models"
)

const testKey = "linkdir_data"

func sampleForest() models.Forest {
	return tree.AssignIDs(models.Forest{
		models.NewFolder("Work",
			models.NewLink("Docs", "https://docs.example"),
			models.NewFolder("Inner"),
		),
		models.NewLink("Go", "https://go.dev"),
	})
}

func TestForestStorage_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock.NewMockKeyValueStore(ctrl)
	s := NewForestStorage(kv, testKey, logger.Nop())
	ctx := context.Background()

	kv.EXPECT().
		Set(ctx, testKey, `[{"name":"Go","type":"Link","url":"https://go.dev"}]`).
		Return(nil)

	require.NoError(t, s.Save(ctx, models.Forest{models.NewLink("Go", "https://go.dev")}))
}

func TestForestStorage_Save_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock.NewMockKeyValueStore(ctrl)
	s := NewForestStorage(kv, testKey, logger.Nop())
	storeErr := errors.New("disk full")

	kv.EXPECT().Set(gomock.Any(), testKey, gomock.Any()).Return(storeErr)

	err := s.Save(context.Background(), sampleForest())
	assert.ErrorIs(t, err, storeErr)
}

func TestForestStorage_Load(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		found   bool
		getErr  error
		want    models.Forest
		wantErr error
	}{
		{
			name:  "absent key",
			found: false,
			want:  models.Forest{},
		},
		{
			name:  "empty value",
			value: "",
			found: true,
			want:  models.Forest{},
		},
		{
			name:  "stored forest",
			value: `[{"name":"Work","type":"Folder","children":[]}]`,
			found: true,
			want:  models.Forest{models.NewFolder("Work")},
		},
		{
			name:    "garbage",
			value:   "{{{",
			found:   true,
			wantErr: codec.ErrParse,
		},
		{
			name:    "store failure",
			getErr:  errors.New("io"),
			wantErr: errors.New("io"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			kv := mock.NewMockKeyValueStore(ctrl)
			kv.EXPECT().Get(gomock.Any(), testKey).Return(tt.value, tt.found, tt.getErr)

			got, err := NewForestStorage(kv, testKey, logger.Nop()).Load(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, codec.ErrParse) {
					assert.ErrorIs(t, err, codec.ErrParse)
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, tree.Equal(tt.want, got))
		})
	}
}
