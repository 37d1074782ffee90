package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveReadDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte{0x89, 'P', 'N', 'G'}

	path, err := store.Save(ctx, data, "png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, root))
	assert.True(t, strings.HasSuffix(path, ".png"))

	got, err := store.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.Delete(ctx, path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_SaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	first, err := store.Save(ctx, []byte("a"), "jpg")
	require.NoError(t, err)
	second, err := store.Save(ctx, []byte("a"), "jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStore_ExtensionDotStripped(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(context.Background(), []byte("a"), ".webp")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".webp"))
	assert.False(t, strings.HasSuffix(path, "..webp"))
}

func TestLocalStore_RejectsPathsOutsideRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	require.NoError(t, err)

	outside := filepath.Join(root, "..", "escape.png")

	_, err = store.Read(context.Background(), outside)
	assert.ErrorContains(t, err, "outside the storage root")

	err = store.Delete(context.Background(), outside)
	assert.ErrorContains(t, err, "outside the storage root")
}

func TestLocalStore_DeleteMissingFileIsNoError(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), filepath.Join(root, "missing.png")))
}

func TestNewLocalStore_EmptyRoot(t *testing.T) {
	_, err := NewLocalStore("")
	assert.Error(t, err)
}
