package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/subscriptions/internal/config"
	"github.com/magabrotheeeer/subscriptions/internal/http/handlers/subscription/health"
	"github.com/magabrotheeeer/subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/subscriptions/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/subscriptions/internal/metrics"
	"github.com/magabrotheeeer/subscriptions/internal/paymentprovider"
	subservice "github.com/magabrotheeeer/subscriptions/internal/services/subscription"
	"github.com/magabrotheeeer/subscriptions/internal/storage/redisdb"
	"github.com/magabrotheeeer/subscriptions/internal/storage/repository"
)

const (
	serviceName      = "subscriptions"
	amqpRetries      = 5
	amqpRetryDelay   = 2 * time.Second
	shutdownDeadline = 15 * time.Second
)

type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        *redis.Client
	amqpConn  *amqp.Connection
	publisher *rabbitmq.Publisher
}

// Option переопределяет зависимости приложения, в основном для тестов.
type Option func(*options)

type options struct {
	db       *redis.Client
	registry prometheus.Registerer
}

// WithRedis использует уже открытый клиент Redis вместо подключения по конфигу.
func WithRedis(db *redis.Client) Option {
	return func(o *options) { o.db = db }
}

// WithRegisterer регистрирует метрики в переданном реестре.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registry = reg }
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	const op = "app.subscriptions.New"

	o := options{registry: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		opt(&o)
	}

	db := o.db
	if db == nil {
		var err error
		db, err = redisdb.New(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	app := &App{
		logger: logger,
		db:     db,
	}

	m := metrics.New(o.registry)
	serviceOpts := []subservice.Option{
		subservice.WithPricePerMonth(cfg.PricePerMonth),
		subservice.WithMetrics(m),
	}

	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, amqpRetries, amqpRetryDelay)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.amqpConn = conn
		ch, err := rabbitmq.SetupExchange(conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.publisher = rabbitmq.NewPublisher(ch, cfg.RabbitMQ.Exchange)
		serviceOpts = append(serviceOpts, subservice.WithPublisher(app.publisher))
		logger.Info("publishing subscription events", slog.String("exchange", cfg.RabbitMQ.Exchange))
	}

	repo := repository.NewSubscriptionRepository(db)
	gateway := paymentprovider.NewClient(cfg.PaymentsService.URL, cfg.PaymentsService.Timeout, paymentprovider.WithMetrics(m))
	subscriptionService := subservice.NewSubscriptionService(repo, gateway, logger, serviceOpts...)

	healthHandler := health.New(logger, serviceName, map[string]health.Check{
		"redis": redisdb.Healthcheck(db),
	})

	router := chi.NewRouter()
	RegisterRoutes(router, logger, subscriptionService, healthHandler, middlewarectx.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return app, nil
}

// Handler возвращает корневой обработчик HTTP-сервера.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownDeadline)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close amqp channel", sl.Err(err))
		}
	}
	if a.amqpConn != nil {
		if err := a.amqpConn.Close(); err != nil {
			a.logger.Warn("failed to close amqp connection", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close redis", sl.Err(err))
	}
}
