package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/nomadlog/travel-journal/internal/jwt"
)

// Tokener defines the token methods protected handlers need to
// establish the caller's identity.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// callerID resolves the authenticated user id from the request token.
func callerID(ctx context.Context, r *http.Request, tokener Tokener) (uuid.UUID, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
