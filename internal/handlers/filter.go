package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nomadlog/travel-journal/internal/logger"
	"github.com/nomadlog/travel-journal/internal/models"
)

// PostFilterer defines the interface that the post service must implement.
type PostFilterer interface {
	FilterByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.TravelPostDB, error)
}

// NewFilterHandler returns an HTTP handler filtering posts by date range.
// @Summary Filter travel posts by date range
// @Description Returns the caller's posts whose visited date falls inside [startDate, endDate], given as epoch milliseconds. An inverted range yields an empty list.
// @Tags posts
// @Produce json
// @Param startDate query string true "Range start, epoch milliseconds"
// @Param endDate query string true "Range end, epoch milliseconds"
// @Success 200 {object} handlers.PostsResponse "Matching posts, favourites first"
// @Failure 400 {object} handlers.ErrorResponse "Malformed date parameters"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /travel-posts/filter [get]
// @Security BearerAuth
func NewFilterHandler(svc PostFilterer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, r, tokener)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		start, err := models.ParseEpochMillis(r.URL.Query().Get("startDate"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "startDate and endDate are required as epoch milliseconds"})
			return
		}
		end, err := models.ParseEpochMillis(r.URL.Query().Get("endDate"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "startDate and endDate are required as epoch milliseconds"})
			return
		}

		posts, err := svc.FilterByDateRange(ctx, userID, start, end)
		if err != nil {
			logger.Log.Errorw("failed to filter posts", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PostsResponse{Stories: posts})
	}
}
