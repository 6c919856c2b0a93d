package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nomadlog/travel-journal/internal/storage"
)

func TestDeleteImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	imageURL := "http://localhost:8000/uploads/1700000000.jpg"

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockImageDeleter)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "success",
			target: "/delete-image?imageUrl=" + url.QueryEscape(imageURL),
			mockSetup: func(m *MockImageDeleter) {
				m.EXPECT().
					Delete(imageURL).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing parameter",
			target:       "/delete-image",
			expectedCode: http.StatusBadRequest,
			expectedErr:  "imageUrl parameter is required",
		},
		{
			name:   "invalid filename",
			target: "/delete-image?imageUrl=..",
			mockSetup: func(m *MockImageDeleter) {
				m.EXPECT().
					Delete("..").
					Return(storage.ErrInvalidFilename)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid imageUrl parameter",
		},
		{
			name:   "store failure",
			target: "/delete-image?imageUrl=" + url.QueryEscape(imageURL),
			mockSetup: func(m *MockImageDeleter) {
				m.EXPECT().
					Delete(imageURL).
					Return(errors.New("disk error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := NewMockImageDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockStore)
			}

			handler := NewDeleteImageHandler(mockStore)

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedErr != "" {
				var body ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.expectedErr, body.Error)
				return
			}

			var body DeleteImageResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "Image deleted successfully", body.Message)
		})
	}
}
