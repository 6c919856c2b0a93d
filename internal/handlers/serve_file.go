package handlers

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

// FileResolver maps a stored filename to an on-disk path, rejecting
// anything outside the storage root.
type FileResolver interface {
	Resolve(name string) (string, error)
}

// NewServeFileHandler returns an HTTP handler serving a single stored
// file by name. There is no directory listing.
// @Summary Serve a stored file
// @Description Returns the raw bytes of an uploaded image or bundled asset.
// @Tags media
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary "File bytes"
// @Failure 404 {string} string "Not found"
// @Router /uploads/{filename} [get]
func NewServeFileHandler(store FileResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, err := store.Resolve(chi.URLParam(r, "filename"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		http.ServeFile(w, r, path)
	}
}
