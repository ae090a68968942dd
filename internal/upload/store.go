// Package upload stores product and banner images on local disk under
// a configured root, with a timestamped random name so client file
// names never reach the filesystem.
package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"grosirku-be/internal/apperr"

	"github.com/google/uuid"
)

// MaxFileSize caps uploads at 16 MiB.
const MaxFileSize = 16 << 20

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var (
	ErrTooLarge    = apperr.Upload("file exceeds the 16MB limit")
	ErrBadFileType = apperr.Upload("file type is not allowed")
)

type Store struct {
	root string
}

// NewStore prepares the upload root and its subdirectories.
func NewStore(root string) (*Store, error) {
	for _, sub := range []string{"products", "banners"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, err
		}
	}
	return &Store{root: root}, nil
}

// Save validates and writes an uploaded image into the given
// subdirectory, returning the path relative to the upload root.
func (s *Store) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > MaxFileSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", ErrBadFileType
	}

	name := time.Now().Format("20060102150405") + "_" + uuid.NewString() + ext
	rel := filepath.Join(subdir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxFileSize)); err != nil {
		os.Remove(filepath.Join(s.root, rel))
		return "", err
	}

	return rel, nil
}

// Remove deletes a previously saved file. A missing file is not an
// error; the catalog record is already gone or being replaced.
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, rel))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Root returns the directory files are served from.
func (s *Store) Root() string { return s.root }
