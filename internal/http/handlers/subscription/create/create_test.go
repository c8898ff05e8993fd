package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/subscriptions/internal/models"
	"github.com/magabrotheeeer/subscriptions/internal/paymentprovider"
	subservice "github.com/magabrotheeeer/subscriptions/internal/services/subscription"
)

// MockService подменяет Purchase; Validate выполняется настоящим сервисом.
type MockService struct {
	mock.Mock
	validator *subservice.SubscriptionService
}

func newMockService(log *slog.Logger) *MockService {
	return &MockService{validator: subservice.NewSubscriptionService(nil, nil, log)}
}

func (m *MockService) Validate(in models.SubscriptionInput) (models.SubscriptionRequest, error) {
	return m.validator.Validate(in)
}

func (m *MockService) Purchase(ctx context.Context, req models.SubscriptionRequest) (models.Subscription, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Subscription), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	purchased := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created := models.RestoreSubscription("premium", 6, models.StatusActive, purchased, purchased.AddDate(0, 6, 0))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная покупка",
			body: `{"product":"premium","monthsPurchased":6}`,
			setupMock: func(m *MockService) {
				m.On("Purchase", mock.Anything, models.SubscriptionRequest{Product: "premium", MonthsPurchased: 6}).
					Return(created, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"product":"premium","monthsPurchased":6,"status":"active",` +
				`"datePurchased":"2024-03-01T00:00:00.000Z","dateExpires":"2024-09-01T00:00:00.000Z"}`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"product":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","details":["invalid request body"]}`,
		},
		{
			name: "целое число месяцев в виде 3.0",
			body: `{"product":"premium","monthsPurchased":3.0}`,
			setupMock: func(m *MockService) {
				m.On("Purchase", mock.Anything, models.SubscriptionRequest{Product: "premium", MonthsPurchased: 3}).
					Return(created, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"product":"premium","monthsPurchased":6,"status":"active",` +
				`"datePurchased":"2024-03-01T00:00:00.000Z","dateExpires":"2024-09-01T00:00:00.000Z"}`,
		},
		{
			name:           "дробное количество месяцев",
			body:           `{"product":"premium","monthsPurchased":1.5}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","details":["Months purchased must be an integer between 1 and 12"]}`,
		},
		{
			name:           "количество месяцев строкой",
			body:           `{"product":"premium","monthsPurchased":"3"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","details":["Months purchased must be an integer between 1 and 12"]}`,
		},
		{
			name:           "product не строка",
			body:           `{"product":42,"monthsPurchased":1}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","details":["Product is required and must be a non-empty string"]}`,
		},
		{
			name:           "оба поля некорректны",
			body:           `{"product":123,"monthsPurchased":13}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","details":["Product is required and must be a non-empty string",` +
				`"Months purchased must be an integer between 1 and 12"]}`,
		},
		{
			name:           "пустое тело",
			body:           ``,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","details":["Product is required and must be a non-empty string",` +
				`"Months purchased must be an integer between 1 and 12"]}`,
		},
		{
			name: "ошибка валидации в сервисе",
			body: `{"product":"premium","monthsPurchased":12}`,
			setupMock: func(m *MockService) {
				m.On("Purchase", mock.Anything, mock.Anything).
					Return(models.Subscription{}, &subservice.ValidationError{Details: []string{subservice.MsgInvalidMonths}}).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","details":["Months purchased must be an integer between 1 and 12"]}`,
		},
		{
			name: "ошибка платёжного сервиса",
			body: `{"product":"premium","monthsPurchased":1}`,
			setupMock: func(m *MockService) {
				m.On("Purchase", mock.Anything, mock.Anything).
					Return(models.Subscription{}, &paymentprovider.GatewayError{Type: "payment", Message: "Card declined"}).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Payment processing failed","details":["Card declined"]}`,
		},
		{
			name: "ошибка хранилища",
			body: `{"product":"premium","monthsPurchased":1}`,
			setupMock: func(m *MockService) {
				m.On("Purchase", mock.Anything, mock.Anything).
					Return(models.Subscription{}, errors.New("redis down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := newMockService(logger)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			New(logger, mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
