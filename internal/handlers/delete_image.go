package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/storage"
)

// ImageDeleter defines the interface that the file store must implement.
type ImageDeleter interface {
	Delete(urlOrName string) error
}

// DeleteImageResponse represents a delete-image response
// swagger:model DeleteImageResponse
type DeleteImageResponse struct {
	// Result message
	// default: Image deleted successfully
	Message string `json:"message"`
}

// NewDeleteImageHandler returns an HTTP handler for image deletion.
// @Summary Delete an uploaded image
// @Description Deletes a stored image by URL or filename. Deleting a missing file still reports success.
// @Tags media
// @Produce json
// @Param imageUrl query string true "Image URL or filename"
// @Success 200 {object} handlers.DeleteImageResponse "Deleted or already absent"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid imageUrl parameter"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /delete-image [delete]
// @Security BearerAuth
func NewDeleteImageHandler(store ImageDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageURL := r.URL.Query().Get("imageUrl")
		if imageURL == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "imageUrl parameter is required"})
			return
		}

		if err := store.Delete(imageURL); err != nil {
			if errors.Is(err, storage.ErrInvalidFilename) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid imageUrl parameter"})
				return
			}
			logger.Log.Errorw("failed to delete image", "imageUrl", imageURL, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteImageResponse{Message: "Image deleted successfully"})
	}
}
