package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func TestStoreSave(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	t.Run("Writes allowed image", func(t *testing.T) {
		fh := fileHeader(t, "photo.PNG", []byte("fake-png-bytes"))

		rel, err := store.Save(fh, "products")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(rel, "products"+string(filepath.Separator)))
		assert.True(t, strings.HasSuffix(rel, ".png"))

		data, err := os.ReadFile(filepath.Join(store.Root(), rel))
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-png-bytes"), data)
	})

	t.Run("Unique names for identical uploads", func(t *testing.T) {
		a, err := store.Save(fileHeader(t, "same.jpg", []byte("x")), "banners")
		require.NoError(t, err)
		b, err := store.Save(fileHeader(t, "same.jpg", []byte("x")), "banners")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("Rejects disallowed extension", func(t *testing.T) {
		_, err := store.Save(fileHeader(t, "script.svg", []byte("<svg/>")), "products")
		assert.ErrorIs(t, err, ErrBadFileType)
	})

	t.Run("Rejects oversized file", func(t *testing.T) {
		fh := fileHeader(t, "big.png", []byte("x"))
		fh.Size = MaxFileSize + 1

		_, err := store.Save(fh, "products")
		assert.ErrorIs(t, err, ErrTooLarge)
	})
}

func TestStoreRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	rel, err := store.Save(fileHeader(t, "gone.webp", []byte("x")), "products")
	require.NoError(t, err)

	require.NoError(t, store.Remove(rel))
	_, statErr := os.Stat(filepath.Join(store.Root(), rel))
	assert.True(t, os.IsNotExist(statErr))

	t.Run("Missing file is fine", func(t *testing.T) {
		assert.NoError(t, store.Remove(rel))
		assert.NoError(t, store.Remove(""))
	})
}
