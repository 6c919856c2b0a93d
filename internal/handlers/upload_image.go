package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/storage"
)

// maxUploadBytes caps multipart parsing memory; larger files spill to disk.
const maxUploadBytes = 32 << 20

// ImageSaver defines the interface that the file store must implement.
type ImageSaver interface {
	Save(content io.Reader, originalName, mimeType string) (string, error)
}

// UploadImageResponse represents a successful upload response
// swagger:model UploadImageResponse
type UploadImageResponse struct {
	// Public URL of the stored image
	ImageURL string `json:"imageUrl"`
}

// NewUploadImageHandler returns an HTTP handler for image uploads.
// @Summary Upload an image
// @Description Stores an uploaded image under a generated unique filename and returns its URL. Only image/* content is accepted.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} handlers.UploadImageResponse "Image stored"
// @Failure 400 {object} handlers.ErrorResponse "No file or not an image"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /image-upload [post]
// @Security BearerAuth
func NewUploadImageHandler(store ImageSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No image uploaded"})
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "No image uploaded"})
			return
		}
		defer file.Close()

		url, err := store.Save(file, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			if errors.Is(err, storage.ErrNotAnImage) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only images are allowed"})
				return
			}
			logger.Log.Errorw("failed to store image", "filename", header.Filename, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadImageResponse{ImageURL: url})
	}
}
