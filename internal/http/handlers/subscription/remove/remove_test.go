package remove

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/subscriptions/internal/paymentprovider"
	subservice "github.com/magabrotheeeer/subscriptions/internal/services/subscription"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Cancel(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "успешная отмена",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Subscription cancelled successfully"}`,
		},
		{
			name:           "подписка не найдена",
			err:            subservice.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"No subscription found"}`,
		},
		{
			name:           "повторная отмена",
			err:            subservice.ErrAlreadyCancelled,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Subscription is already cancelled"}`,
		},
		{
			name:           "ошибка возврата",
			err:            &paymentprovider.GatewayError{Type: "refund", Message: "Payment service unavailable"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Refund processing failed","details":["Payment service unavailable"]}`,
		},
		{
			name:           "ошибка хранилища",
			err:            errors.New("redis down"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			mockService.On("Cancel", mock.Anything).Return(tt.err).Once()

			req := httptest.NewRequest(http.MethodDelete, "/api/subscriptions", nil)
			w := httptest.NewRecorder()

			New(logger, mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
