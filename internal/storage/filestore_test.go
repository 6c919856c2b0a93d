package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, "http://localhost:8000/")
	assert.NoError(t, err)

	url, err := store.Save(strings.NewReader("fake-jpeg-bytes"), "holiday.jpg", "image/jpeg")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8000/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The URL's filename resolves to a real stored file
	name, err := Filename(url)
	assert.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, "fake-jpeg-bytes", string(content))
}

func TestFileStore_Save_RejectsNonImage(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "http://localhost:8000")
	assert.NoError(t, err)

	_, err = store.Save(strings.NewReader("#!/bin/sh"), "script.sh", "application/x-sh")
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = store.Save(strings.NewReader("<html>"), "page.html", "text/html")
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestFileStore_Save_UniqueNames(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "http://localhost:8000")
	assert.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		url, err := store.Save(strings.NewReader("x"), "a.png", "image/png")
		assert.NoError(t, err)
		assert.False(t, seen[url], "filename collision: %s", url)
		seen[url] = true
	}
}

func TestFileStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, "http://localhost:8000")
	assert.NoError(t, err)

	url, err := store.Save(strings.NewReader("bytes"), "pic.png", "image/png")
	assert.NoError(t, err)

	// Delete by full URL
	assert.NoError(t, store.Delete(url))
	name, _ := Filename(url)
	_, statErr := os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting again reports success, not an error
	assert.NoError(t, store.Delete(url))
	assert.NoError(t, store.Delete("never-existed.jpg"))
}

func TestFileStore_Delete_RejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "http://localhost:8000")
	assert.NoError(t, err)

	assert.ErrorIs(t, store.Delete(""), ErrInvalidFilename)
	assert.ErrorIs(t, store.Delete(".."), ErrInvalidFilename)
}

func TestFileStore_Resolve(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, "http://localhost:8000")
	assert.NoError(t, err)

	path, err := store.Resolve("123.png")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "123.png"), path)

	_, err = store.Resolve("..")
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestFilename(t *testing.T) {
	name, err := Filename("http://localhost:8000/uploads/1700000000.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "1700000000.jpg", name)

	name, err = Filename("plain.png")
	assert.NoError(t, err)
	assert.Equal(t, "plain.png", name)

	// path.Base collapses traversal to the last segment; bare dots are refused
	_, err = Filename("../")
	assert.ErrorIs(t, err, ErrInvalidFilename)
	_, err = Filename("")
	assert.ErrorIs(t, err, ErrInvalidFilename)
}
