package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/models"
	"github.com/nomadlog/travel-journal/internal/services"
)

// PostEditor defines the interface that the post service must implement.
type PostEditor interface {
	EditPost(ctx context.Context, postID, userID uuid.UUID, title, story string, visitedLocation models.Locations, imageURL string, visitedDate time.Time) (*models.TravelPostDB, error)
}

// EditPostRequest represents the JSON body for editing a travel post
// swagger:model EditPostRequest
type EditPostRequest struct {
	// Title
	// required: true
	Title string `json:"title"`

	// Story body
	// required: true
	Story string `json:"story"`

	// Visited locations in order
	// required: true
	VisitedLocation models.Locations `json:"visitedLocation"`

	// Image URL; empty falls back to the placeholder image
	ImageURL string `json:"imageUrl"`

	// Visit date as epoch milliseconds
	// required: true
	VisitedDate models.EpochMillis `json:"visitedDate"`
}

// NewEditPostHandler returns an HTTP handler for editing travel posts.
// @Summary Edit a travel post
// @Description Overwrites the editable fields of an owned post. The favourite flag is not touched.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param editPostRequest body handlers.EditPostRequest true "Updated travel post"
// @Success 200 {object} handlers.PostResponse "Post updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Router /edit-travel-post/{id} [put]
// @Security BearerAuth
func NewEditPostHandler(svc PostEditor, tokener Tokener) http.HandlerFunc {
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

		var req EditPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "All fields are required"})
			return
		}

		var visitedDate time.Time
		if !req.VisitedDate.IsZero() {
			visitedDate = req.VisitedDate.Time()
		}

		post, err := svc.EditPost(ctx, postID, userID, req.Title, req.Story, req.VisitedLocation, req.ImageURL, visitedDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAllFieldsRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "All fields are required"})
			case errors.Is(err, services.ErrPostNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Travel story not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PostResponse{Story: post, Message: "Update Successful"})
	}
}
