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

// UserGetter defines the interface that the profile service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// GetUserResponse represents the current user response
// swagger:model GetUserResponse
type GetUserResponse struct {
	// Authenticated user
	User UserResponse `json:"user"`
}

// NewGetUserHandler returns an HTTP handler for fetching the current user.
// @Summary Get current user
// @Description Returns the profile of the authenticated caller. Answers 401 when the account behind the token no longer exists.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.GetUserResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized or stale identity"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /get-user [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, r, tokener)
		if err != nil {
			logger.Log.Errorw("unauthorized get-user request", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
				return
			}
			logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetUserResponse{
			User: UserResponse{FullName: user.FullName, Email: user.Email},
		})
	}
}
