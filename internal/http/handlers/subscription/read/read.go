// Package read реализует HTTP-обработчик получения текущей подписки.
//
// Если срок подписки истёк, сервис сохраняет статус expired до ответа клиенту.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscriptions/internal/http/response"
	"github.com/magabrotheeeer/subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/subscriptions/internal/models"
	subservice "github.com/magabrotheeeer/subscriptions/internal/services/subscription"
)

// Handler обрабатывает GET /subscriptions.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения подписки.
type Service interface {
	Get(ctx context.Context) (models.Subscription, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить подписку
// @Description Возвращает текущую подписку. Истёкшая подписка получает статус expired.
// @Tags Subscriptions
// @Produce  json
// @Success 200 {object} models.SubscriptionResponse "Текущая подписка"
// @Failure 404 {object} response.ErrorResponse "Подписки нет"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sub, err := h.service.Get(r.Context())
	if errors.Is(err, subservice.ErrNotFound) {
		log.Info("subscription not found")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error(response.MsgNotFound))
		return
	}
	if err != nil {
		log.Error("failed to get subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.MsgInternal))
		return
	}

	resp := sub.ToResponse()
	log.Info("subscription retrieved successfully",
		slog.String("product", resp.Product),
		slog.String("status", string(resp.Status)),
	)
	render.JSON(w, r, resp)
}
