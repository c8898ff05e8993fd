// Package subscriptions собирает HTTP-приложение сервиса подписок.
package subscriptions

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	_ "github.com/magabrotheeeer/subscriptions/docs"

	"github.com/magabrotheeeer/subscriptions/internal/http/handlers/subscription/create"
	"github.com/magabrotheeeer/subscriptions/internal/http/handlers/subscription/health"
	"github.com/magabrotheeeer/subscriptions/internal/http/handlers/subscription/read"
	"github.com/magabrotheeeer/subscriptions/internal/http/handlers/subscription/remove"
	"github.com/magabrotheeeer/subscriptions/internal/http/middlewarectx"
	subservice "github.com/magabrotheeeer/subscriptions/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, subscriptionService *subservice.SubscriptionService, healthHandler *health.Handler, limiter *rate.Limiter) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.RateLimitMiddleware(logger, limiter),
	)

	r.Route("/api/subscriptions", func(r chi.Router) {
		r.Get("/", read.New(logger, subscriptionService).ServeHTTP)
		r.Post("/", create.New(logger, subscriptionService).ServeHTTP)
		r.Delete("/", remove.New(logger, subscriptionService).ServeHTTP)
	})

	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
