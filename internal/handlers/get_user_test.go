package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nomadlog/travel-journal/internal/jwt"
	"github.com/nomadlog/travel-journal/internal/models"
	"github.com/nomadlog/travel-journal/internal/services"
)

// expectCaller wires the tokener mock to resolve the given user id.
func expectCaller(m *MockTokener, userID uuid.UUID) {
	m.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("token123", nil)
	m.EXPECT().
		GetClaims(gomock.Any(), "token123").
		Return(&jwt.Claims{UserID: userID}, nil)
}

// expectNoCaller wires the tokener mock to reject the request token.
func expectNoCaller(m *MockTokener) {
	m.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", errors.New("missing authorization header"))
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func(svc *MockUserGetter, tok *MockTokener)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			mockSetup: func(svc *MockUserGetter, tok *MockTokener) {
				expectCaller(tok, userID)
				svc.EXPECT().
					GetUser(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, FullName: "John Doe", Email: "john@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing token",
			mockSetup: func(svc *MockUserGetter, tok *MockTokener) {
				expectNoCaller(tok)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name: "account removed after token issued",
			mockSetup: func(svc *MockUserGetter, tok *MockTokener) {
				expectCaller(tok, userID)
				svc.EXPECT().
					GetUser(gomock.Any(), userID).
					Return(nil, services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name: "internal server error",
			mockSetup: func(svc *MockUserGetter, tok *MockTokener) {
				expectCaller(tok, userID)
				svc.EXPECT().
					GetUser(gomock.Any(), userID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			mockTok := NewMockTokener(ctrl)
			tt.mockSetup(mockSvc, mockTok)

			handler := NewGetUserHandler(mockSvc, mockTok)

			req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedErr != "" {
				var body ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.expectedErr, body.Error)
				return
			}

			var body GetUserResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "John Doe", body.User.FullName)
			assert.Equal(t, "john@example.com", body.User.Email)
		})
	}
}
