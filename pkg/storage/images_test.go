package storage

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngPayload(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2)))
	require.NoError(t, err)
	return &buf
}

func TestSaveMovieImagePNG(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	movieID := uuid.New()
	name, err := store.SaveMovieImage(movieID, pngPayload(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "movie_"+movieID.String()))
	assert.True(t, strings.HasSuffix(name, ".png"))

	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.NoError(t, err)
}

func TestSaveMovieImageRejectsNonImage(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.SaveMovieImage(uuid.New(), strings.NewReader("just some text"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.SaveMovieImage(uuid.New(), pngPayload(t))
	require.NoError(t, err)

	store.Remove(name)

	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(err))
}
