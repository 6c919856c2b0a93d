package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Error variables
var (
	ErrNotAnImage      = errors.New("only images are allowed")
	ErrInvalidFilename = errors.New("invalid filename")
)

// FileStore keeps uploaded images on local disk and builds the public
// URLs they are served under.
type FileStore struct {
	dir     string
	baseURL string
}

// NewFileStore creates the upload directory if needed and returns a store.
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes an uploaded image to disk under a generated unique name
// and returns the URL it will be served from. Non-image MIME types are
// rejected. Nanosecond timestamps keep concurrent uploads from colliding.
func (s *FileStore) Save(content io.Reader, originalName, mimeType string) (string, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return "", ErrNotAnImage
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return s.URL(name), nil
}

// Delete removes a stored file by URL or bare filename. A missing file
// is treated as success so deletion stays idempotent.
func (s *FileStore) Delete(urlOrName string) error {
	name, err := Filename(urlOrName)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Resolve returns the on-disk path for a stored filename, refusing
// anything that would escape the storage root.
func (s *FileStore) Resolve(name string) (string, error) {
	clean, err := Filename(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, clean), nil
}

// URL builds the public URL for a stored filename.
func (s *FileStore) URL(name string) string {
	return s.baseURL + "/uploads/" + name
}

// Filename extracts the bare filename from a URL or path. Traversal
// segments and empty names are rejected.
func Filename(urlOrName string) (string, error) {
	name := path.Base(strings.TrimSpace(urlOrName))
	if name == "" || name == "." || name == ".." || name == "/" || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidFilename
	}
	return name, nil
}
