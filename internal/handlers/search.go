package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/models"
	"github.com/nomadlog/travel-journal/internal/services"
)

// PostSearcher defines the interface that the post service must implement.
type PostSearcher interface {
	Search(ctx context.Context, userID uuid.UUID, query string) ([]models.TravelPostDB, error)
}

// NewSearchHandler returns an HTTP handler searching the caller's posts.
// @Summary Search travel posts
// @Description Case-insensitive substring match over title, story and visited locations of the caller's posts.
// @Tags posts
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} handlers.PostsResponse "Matching posts, favourites first"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Missing query parameter"
// @Router /search [get]
// @Security BearerAuth
func NewSearchHandler(svc PostSearcher, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		posts, err := svc.Search(ctx, userID, r.URL.Query().Get("query"))
		if err != nil {
			if errors.Is(err, services.ErrSearchQueryRequired) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "query is required"})
				return
			}
			logger.Log.Errorw("failed to search posts", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PostsResponse{Stories: posts})
	}
}
