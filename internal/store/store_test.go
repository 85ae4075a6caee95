package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runKeyValueContract checks the behaviour every backend shares.
func runKeyValueContract(t *testing.T, newStore func(t *testing.T) KeyValueStore) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		s := newStore(t)
		value, found, err := s.Get(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", `[{"name":"x"}]`))

		value, found, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `[{"name":"x"}]`, value)
	})

	t.Run("last write wins", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", "one"))
		require.NoError(t, s.Set(ctx, "k", "two"))

		value, _, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "two", value)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "k", "v"))
		require.NoError(t, s.Delete(ctx, "k"))
		require.NoError(t, s.Delete(ctx, "k"))

		_, found, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("empty key", func(t *testing.T) {
		s := newStore(t)
		_, _, err := s.Get(ctx, "")
		assert.ErrorIs(t, err, ErrEmptyKey)
		assert.ErrorIs(t, s.Set(ctx, "", "v"), ErrEmptyKey)
		assert.ErrorIs(t, s.Delete(ctx, ""), ErrEmptyKey)
	})

	t.Run("closed", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Close())
		_, _, err := s.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrStoreClosed)
		assert.ErrorIs(t, s.Set(ctx, "k", "v"), ErrStoreClosed)
	})
}

func TestMemoryStore(t *testing.T) {
	runKeyValueContract(t, func(t *testing.T) KeyValueStore {
		return NewMemoryStore()
	})
}

func TestFileStore(t *testing.T) {
	runKeyValueContract(t, func(t *testing.T) KeyValueStore {
		s, err := NewFileStore(filepath.Join(t.TempDir(), "store.json"))
		require.NoError(t, err)
		return s
	})
}

func TestFileStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "store.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "linkdir_data", "[]"))
	require.NoError(t, s.Close())

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	value, found, err := reopened.Get(ctx, "linkdir_data")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode storage file")
}

func TestFileStore_EmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.ErrorIs(t, err, ErrEmptyDSN)
}
