package subscription

import (
	"time"

	"github.com/magabrotheeeer/subscriptions/internal/metrics"
)

// Option настраивает SubscriptionService.
type Option func(*SubscriptionService)

// WithPricePerMonth задаёт цену одного месяца.
func WithPricePerMonth(price int) Option {
	return func(s *SubscriptionService) {
		if price > 0 {
			s.pricePerMonth = price
		}
	}
}

// WithPublisher включает публикацию событий после сохранения.
func WithPublisher(p EventPublisher) Option {
	return func(s *SubscriptionService) {
		s.publisher = p
	}
}

// WithMetrics включает учёт переходов в prometheus.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *SubscriptionService) {
		s.metrics = m
	}
}

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *SubscriptionService) {
		s.now = now
	}
}
