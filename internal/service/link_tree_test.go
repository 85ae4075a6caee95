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
	"github.com/MKhiriev/linkdir/internal/store"
	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/internal/validators"
	"github.com/MKhiriev/linkdir/models"
)

type linkTreeFixture struct {
	svc   LinkTreeService
	kv    store.KeyValueStore
	clip  *mock.MockClipboard
	fs    *mock.MockFileSystem
	ctx   context.Context
	saved ForestStorage
}

// newOpenedLinkTree returns a session over a memory store seeded with seed.
func newOpenedLinkTree(t *testing.T, ctrl *gomock.Controller, seed models.Forest) *linkTreeFixture {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemoryStore()
	storage := NewForestStorage(kv, testKey, logger.Nop())
	if seed != nil {
		require.NoError(t, storage.Save(ctx, seed))
	}

	clip := mock.NewMockClipboard(ctrl)
	fs := mock.NewMockFileSystem(ctrl)
	interchange := NewInterchangeService(clip, fs, testExportName, logger.Nop())

	svc := NewLinkTreeService(storage, interchange, validators.NewItemValidator(), logger.Nop())
	require.NoError(t, svc.Open(ctx))

	return &linkTreeFixture{svc: svc, kv: kv, clip: clip, fs: fs, ctx: ctx, saved: storage}
}

// stored returns what a fresh load of the storage yields.
func (fx *linkTreeFixture) stored(t *testing.T) models.Forest {
	t.Helper()
	f, err := fx.saved.Load(fx.ctx)
	require.NoError(t, err)
	return f
}

func TestLinkTree_OpenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, nil)
	assert.Empty(t, fx.svc.Forest())
}

func TestLinkTree_OpenGarbage(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, testKey, "not json"))

	svc := NewLinkTreeService(NewForestStorage(kv, testKey, logger.Nop()), nil, validators.NewItemValidator(), logger.Nop())
	err := svc.Open(ctx)
	assert.ErrorIs(t, err, codec.ErrParse)

	_, err = svc.AddItem(ctx, nil, models.NewFolder("Work"))
	assert.ErrorIs(t, err, ErrNotOpened)
}

func TestLinkTree_AddItemPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, models.Forest{models.NewFolder("Work")})

	got, err := fx.svc.AddItem(fx.ctx, models.Path{"Work"}, models.NewLink("  Docs ", " https://docs.example "))
	require.NoError(t, err)

	want := models.Forest{models.NewFolder("Work", models.NewLink("Docs", "https://docs.example"))}
	assert.True(t, tree.Equal(want, got))
	assert.True(t, tree.Equal(want, fx.svc.Forest()))
	assert.True(t, tree.Equal(want, fx.stored(t)))
}

func TestLinkTree_AddInvalidItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, nil)

	_, err := fx.svc.AddItem(fx.ctx, nil, models.NewLink("Go", ""))
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.ErrorIs(t, err, validators.ErrEmptyURL)
	assert.Empty(t, fx.svc.Forest())
}

func TestLinkTree_AddIntoLinkFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seed := models.Forest{models.NewLink("Go", "https://go.dev")}
	fx := newOpenedLinkTree(t, ctrl, seed)

	got, err := fx.svc.AddItem(fx.ctx, models.Path{"Go"}, models.NewLink("x", "https://x"))
	assert.ErrorIs(t, err, tree.ErrNotAFolder)
	assert.True(t, tree.Equal(seed, got))
	assert.True(t, tree.Equal(seed, fx.stored(t)))
}

func TestLinkTree_EditItemByOldName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, models.Forest{
		models.NewLink("A", "https://a"),
		models.NewLink("B", "https://b"),
	})

	got, err := fx.svc.EditItem(fx.ctx, models.Path{"A"}, models.NewLink("B", "https://a2"))
	require.NoError(t, err)

	want := models.Forest{
		models.NewLink("B", "https://a2"),
		models.NewLink("B", "https://b"),
	}
	assert.True(t, tree.Equal(want, got))
}

func TestLinkTree_EditByIDKeepsFolderChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, models.Forest{
		models.NewFolder("Work", models.NewLink("Docs", "https://docs.example")),
	})
	id := fx.svc.Forest()[0].ID

	edited := models.NewFolder("Job")
	edited.Icon = "work"
	got, err := fx.svc.Edit(fx.ctx, id, edited)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "Job", got[0].Name)
	assert.Equal(t, "work", got[0].Icon)
	assert.Len(t, got[0].Children, 1)
}

func TestLinkTree_DeleteByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, sampleForest())
	id := fx.svc.Forest()[0].ID

	got, err := fx.svc.Delete(fx.ctx, id)
	require.NoError(t, err)
	assert.True(t, tree.Equal(models.Forest{models.NewLink("Go", "https://go.dev")}, got))
	assert.True(t, tree.Equal(got, fx.stored(t)))

	_, err = fx.svc.Delete(fx.ctx, id)
	assert.ErrorIs(t, err, tree.ErrIDNotFound)
}

func TestLinkTree_DeleteItemByPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, sampleForest())

	got, err := fx.svc.DeleteItem(fx.ctx, models.Path{"Work", "Docs"})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count())

	_, err = fx.svc.DeleteItem(fx.ctx, models.Path{"Work", "Docs"})
	assert.ErrorIs(t, err, tree.ErrPathNotFound)
}

func TestLinkTree_Move(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, sampleForest())
	f := fx.svc.Forest()
	workID, goID := f[0].ID, f[1].ID
	innerID := f[0].Children[1].ID

	got, err := fx.svc.Move(fx.ctx, goID, innerID)
	require.NoError(t, err)
	want := models.Forest{
		models.NewFolder("Work",
			models.NewLink("Docs", "https://docs.example"),
			models.NewFolder("Inner", models.NewLink("Go", "https://go.dev")),
		),
	}
	assert.True(t, tree.Equal(want, got))

	_, err = fx.svc.Move(fx.ctx, goID, innerID)
	assert.ErrorIs(t, err, ErrNoOpMove)

	_, err = fx.svc.Move(fx.ctx, workID, innerID)
	assert.ErrorIs(t, err, tree.ErrMoveIntoSelf)

	_, err = fx.svc.Move(fx.ctx, goID, "missing")
	assert.ErrorIs(t, err, tree.ErrIDNotFound)
	assert.Equal(t, 4, fx.svc.Forest().Count())
}

func TestLinkTree_MoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, sampleForest())

	_, err := fx.svc.MoveItem(fx.ctx, models.Path{"Go"}, nil)
	assert.ErrorIs(t, err, ErrNoOpMove)

	_, err = fx.svc.MoveItem(fx.ctx, models.Path{"Nope"}, nil)
	assert.ErrorIs(t, err, tree.ErrPathNotFound)

	_, err = fx.svc.MoveItem(fx.ctx, models.Path{"Go"}, models.Path{"Missing"})
	assert.ErrorIs(t, err, tree.ErrPathNotFound)
	assert.Equal(t, 4, fx.svc.Forest().Count())

	got, err := fx.svc.MoveItem(fx.ctx, models.Path{"Work", "Docs"}, nil)
	require.NoError(t, err)
	want := models.Forest{
		models.NewFolder("Work", models.NewFolder("Inner")),
		models.NewLink("Go", "https://go.dev"),
		models.NewLink("Docs", "https://docs.example"),
	}
	assert.True(t, tree.Equal(want, got))
	assert.True(t, tree.Equal(want, fx.stored(t)))
}

func TestLinkTree_PersistFailureKeepsForest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	kv := mock.NewMockKeyValueStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), testKey).Return(`[{"name":"Work","type":"Folder","children":[]}]`, true, nil)
	kv.EXPECT().Set(gomock.Any(), testKey, gomock.Any()).Return(errors.New("disk full"))

	svc := NewLinkTreeService(NewForestStorage(kv, testKey, logger.Nop()), nil, validators.NewItemValidator(), logger.Nop())
	require.NoError(t, svc.Open(ctx))
	before := svc.Forest()

	got, err := svc.AddItem(ctx, models.Path{"Work"}, models.NewLink("Go", "https://go.dev"))
	require.Error(t, err)
	assert.True(t, tree.Equal(before, got))
	assert.True(t, tree.Equal(before, svc.Forest()))
}

func TestLinkTree_ClearAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, sampleForest())

	got, err := fx.svc.ClearAll(fx.ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, fx.stored(t))
}

func TestLinkTree_ImportFromClipboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, sampleForest())

	fx.clip.EXPECT().ReadAll().Return(`[{"name":"New","type":"Link","url":"https://new"}]`, nil)
	got, err := fx.svc.ImportFromClipboard(fx.ctx)
	require.NoError(t, err)
	want := models.Forest{models.NewLink("New", "https://new")}
	assert.True(t, tree.Equal(want, got))
	assert.True(t, tree.Equal(want, fx.stored(t)))
}

func TestLinkTree_FailedImportLeavesForest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seed := sampleForest()
	fx := newOpenedLinkTree(t, ctrl, seed)

	fx.clip.EXPECT().ReadAll().Return("{not an array}", nil)
	_, err := fx.svc.ImportFromClipboard(fx.ctx)
	assert.ErrorIs(t, err, codec.ErrParse)

	fx.fs.EXPECT().ReadFile("links.json").Return(nil, errors.New("permission denied"))
	_, err = fx.svc.ImportFromFile(fx.ctx, "links.json")
	assert.ErrorIs(t, err, ErrResource)

	assert.True(t, tree.Equal(seed, fx.svc.Forest()))
	assert.True(t, tree.Equal(seed, fx.stored(t)))
}

func TestLinkTree_ImportFromFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, nil)

	fx.fs.EXPECT().ReadFile("links.json").Return([]byte(`[{"name":"Work","type":"Folder","children":[]}]`), nil)
	got, err := fx.svc.ImportFromFile(fx.ctx, "links.json")
	require.NoError(t, err)
	assert.True(t, tree.Equal(models.Forest{models.NewFolder("Work")}, got))
}

func TestLinkTree_ExportAndCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, sampleForest())
	want, err := codec.EncodeIndent(fx.svc.Forest())
	require.NoError(t, err)

	fx.fs.EXPECT().MkdirAll("exports", gomock.Any()).Return(nil)
	fx.fs.EXPECT().WriteFile(gomock.Any(), want, gomock.Any()).Return(nil)
	_, err = fx.svc.Export(fx.ctx, "exports")
	require.NoError(t, err)

	fx.clip.EXPECT().WriteAll(string(want)).Return(nil)
	require.NoError(t, fx.svc.CopyToClipboard(fx.ctx))
}

func TestLinkTree_CopyURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newOpenedLinkTree(t, ctrl, models.Forest{
		models.NewLink("Go", "go.dev"),
		models.NewFolder("Work"),
	})
	f := fx.svc.Forest()

	fx.clip.EXPECT().WriteAll("https://go.dev").Return(nil)
	url, err := fx.svc.CopyURL(fx.ctx, f[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", url)

	_, err = fx.svc.CopyURL(fx.ctx, f[1].ID)
	assert.ErrorIs(t, err, tree.ErrKindMismatch)
}
