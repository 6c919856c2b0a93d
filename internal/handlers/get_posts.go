package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/models"
)

// PostLister defines the interface that the post service must implement.
type PostLister interface {
	ListPosts(ctx context.Context, userID uuid.UUID) ([]models.TravelPostDB, error)
}

// PostsResponse wraps a list of travel posts
// swagger:model PostsResponse
type PostsResponse struct {
	// Travel posts, favourites first
	Stories []models.TravelPostDB `json:"stories"`
}

// NewGetPostsHandler returns an HTTP handler listing the caller's posts.
// @Summary List travel posts
// @Description Returns all posts owned by the caller, favourites first.
// @Tags posts
// @Produce json
// @Success 200 {object} handlers.PostsResponse "Posts"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /get-all-posts [get]
// @Security BearerAuth
func NewGetPostsHandler(svc PostLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		posts, err := svc.ListPosts(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list posts", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PostsResponse{Stories: posts})
	}
}
