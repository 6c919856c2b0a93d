package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/models"
	"github.com/nomadlog/travel-journal/internal/services"
)

// PostAdder defines the interface that the post service must implement.
type PostAdder interface {
	AddPost(ctx context.Context, userID uuid.UUID, title, story string, visitedLocation models.Locations, imageURL string, visitedDate time.Time) (*models.TravelPostDB, error)
}

// AddPostRequest represents the JSON body for creating a travel post
// swagger:model AddPostRequest
type AddPostRequest struct {
	// Title
	// required: true
	// default: Paris Trip
	Title string `json:"title"`

	// Story body
	// required: true
	Story string `json:"story"`

	// Visited locations in order
	// required: true
	VisitedLocation models.Locations `json:"visitedLocation"`

	// Uploaded image URL
	// required: true
	ImageURL string `json:"imageUrl"`

	// Visit date as epoch milliseconds
	// required: true
	// default: 1700000000000
	VisitedDate models.EpochMillis `json:"visitedDate"`
}

// PostResponse wraps a single travel post
// swagger:model PostResponse
type PostResponse struct {
	// The travel post
	Story *models.TravelPostDB `json:"story"`
	// Result message
	Message string `json:"message"`
}

// NewAddPostHandler returns an HTTP handler for creating travel posts.
// @Summary Add a travel post
// @Description Creates a travel post owned by the caller. All fields are required; validation failure stops the request.
// @Tags posts
// @Accept json
// @Produce json
// @Param addPostRequest body handlers.AddPostRequest true "Travel post"
// @Success 201 {object} handlers.PostResponse "Post created"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /add-travel-post [post]
// @Security BearerAuth
func NewAddPostHandler(svc PostAdder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req AddPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "All fields are required"})
			return
		}

		var visitedDate time.Time
		if !req.VisitedDate.IsZero() {
			visitedDate = req.VisitedDate.Time()
		}

		post, err := svc.AddPost(ctx, userID, req.Title, req.Story, req.VisitedLocation, req.ImageURL, visitedDate)
		if err != nil {
			if errors.Is(err, services.ErrAllFieldsRequired) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "All fields are required"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PostResponse{Story: post, Message: "Added Successfully"})
	}
}
