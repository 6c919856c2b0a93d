package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/services"
)

// PostDeleter defines the interface that the post service must implement.
type PostDeleter interface {
	DeletePost(ctx context.Context, postID, userID uuid.UUID) error
}

// DeletePostResponse represents a successful deletion response
// swagger:model DeletePostResponse
type DeletePostResponse struct {
	// Result message
	// default: Travel story deleted successfully
	Message string `json:"message"`
}

// NewDeletePostHandler returns an HTTP handler for deleting travel posts.
// @Summary Delete a travel post
// @Description Deletes an owned post and best-effort removes its image file. Record deletion stands even if the file removal fails.
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} handlers.DeletePostResponse "Post deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Router /delete-travel-post/{id} [delete]
// @Security BearerAuth
func NewDeletePostHandler(svc PostDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		postID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Travel story not found"})
			return
		}

		if err := svc.DeletePost(ctx, postID, userID); err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Travel story not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeletePostResponse{Message: "Travel story deleted successfully"})
	}
}
