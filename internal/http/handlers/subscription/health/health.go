// Package health реализует пробы liveness и readiness.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscriptions/internal/lib/sl"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

const checkTimeout = 2 * time.Second

// Check проверка одной зависимости.
type Check func(ctx context.Context) error

// Status тело ответа пробы.
type Status struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Service   string            `json:"service"`
	Uptime    float64           `json:"uptime,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	log     *slog.Logger
	service string
	checks  map[string]Check
	started time.Time
}

// New создаёт обработчик проб. checks проверяются в readiness.
func New(log *slog.Logger, service string, checks map[string]Check) *Handler {
	return &Handler{
		log:     log,
		service: service,
		checks:  checks,
		started: time.Now(),
	}
}

// Live отвечает 200, пока процесс обслуживает запросы.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Status{
		Status:    StatusUp,
		Timestamp: time.Now().UTC(),
		Service:   h.service,
		Uptime:    time.Since(h.started).Seconds(),
	})
}

// Ready отвечает 200, если все зависимости доступны, иначе 503.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.Ready"

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status := Status{
		Status:    StatusUp,
		Timestamp: time.Now().UTC(),
		Service:   h.service,
		Checks:    make(map[string]string, len(h.checks)),
	}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.log.Warn("readiness check failed", slog.String("op", op), slog.String("check", name), sl.Err(err))
			status.Status = StatusDown
			status.Checks[name] = StatusDown
			continue
		}
		status.Checks[name] = StatusUp
	}

	if status.Status == StatusDown {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	render.JSON(w, r, status)
}

// ServeHTTP общая проба /health, совпадает с Ready.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Ready(w, r)
}
