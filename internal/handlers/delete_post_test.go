package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nomadlog/travel-journal/internal/services"
)

func TestDeletePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	postID := uuid.New()

	tests := []struct {
		name         string
		postID       string
		mockSetup    func(svc *MockPostDeleter, tok *MockTokener)
		expectedCode int
		expectedMsg  string
		expectedErr  string
	}{
		{
			name:   "success",
			postID: postID.String(),
			mockSetup: func(svc *MockPostDeleter, tok *MockTokener) {
				expectCaller(tok, userID)
				svc.EXPECT().
					DeletePost(gomock.Any(), postID, userID).
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Travel story deleted successfully",
		},
		{
			name:   "unauthorized",
			postID: postID.String(),
			mockSetup: func(svc *MockPostDeleter, tok *MockTokener) {
				expectNoCaller(tok)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name:   "malformed post id",
			postID: "not-a-uuid",
			mockSetup: func(svc *MockPostDeleter, tok *MockTokener) {
				expectCaller(tok, userID)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Travel story not found",
		},
		{
			name:   "post not found",
			postID: postID.String(),
			mockSetup: func(svc *MockPostDeleter, tok *MockTokener) {
				expectCaller(tok, userID)
				svc.EXPECT().
					DeletePost(gomock.Any(), postID, userID).
					Return(services.ErrPostNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Travel story not found",
		},
		{
			name:   "internal server error",
			postID: postID.String(),
			mockSetup: func(svc *MockPostDeleter, tok *MockTokener) {
				expectCaller(tok, userID)
				svc.EXPECT().
					DeletePost(gomock.Any(), postID, userID).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPostDeleter(ctrl)
			mockTok := NewMockTokener(ctrl)
			tt.mockSetup(mockSvc, mockTok)

			router := chi.NewRouter()
			router.Delete("/delete-travel-post/{id}", NewDeletePostHandler(mockSvc, mockTok))

			req := httptest.NewRequest(http.MethodDelete, "/delete-travel-post/"+tt.postID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedErr != "" {
				var body ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.expectedErr, body.Error)
				return
			}

			var body DeletePostResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.expectedMsg, body.Message)
		})
	}
}
