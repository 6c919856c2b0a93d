package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/models"
	"github.com/nomadlog/travel-journal/internal/services"
)

// FavouriteSetter defines the interface that the post service must implement.
type FavouriteSetter interface {
	SetFavourite(ctx context.Context, postID, userID uuid.UUID, isFavourite bool) (*models.TravelPostDB, error)
}

// FavouriteRequest represents the JSON body for toggling the favourite flag
// swagger:model FavouriteRequest
type FavouriteRequest struct {
	// Favourite flag
	// required: true
	IsFavourite bool `json:"isFavourite"`
}

// NewFavouriteHandler returns an HTTP handler toggling the favourite flag.
// @Summary Update the favourite flag
// @Description Sets isFavourite on an owned post and returns the updated post.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param favouriteRequest body handlers.FavouriteRequest true "Favourite flag"
// @Success 200 {object} handlers.PostResponse "Post updated"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Router /update-is-favourite/{id} [put]
// @Security BearerAuth
func NewFavouriteHandler(svc FavouriteSetter, tokener Tokener) http.HandlerFunc {
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

		var req FavouriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		post, err := svc.SetFavourite(ctx, postID, userID, req.IsFavourite)
		if err != nil {
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
		json.NewEncoder(w).Encode(PostResponse{Story: post, Message: "Update Successful"})
	}
}
