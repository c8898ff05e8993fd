package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscriptions/internal/http/response"
	"github.com/magabrotheeeer/subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/subscriptions/internal/paymentprovider"
	subservice "github.com/magabrotheeeer/subscriptions/internal/services/subscription"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Cancel(ctx context.Context) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отменить подписку
// @Description Отменяет подписку. Действующая подписка возвращается полной стоимостью.
// @Tags Subscriptions
// @Produce  json
// @Success 200 {object} response.MessageResponse "Подписка отменена"
// @Failure 400 {object} response.ErrorResponse "Подписка уже отменена или возврат не прошёл"
// @Failure 404 {object} response.ErrorResponse "Подписки нет"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	err := h.service.Cancel(r.Context())
	switch {
	case err == nil:
	case errors.Is(err, subservice.ErrNotFound):
		log.Info("subscription not found")
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error(response.MsgNotFound))
		return
	case errors.Is(err, subservice.ErrAlreadyCancelled):
		log.Info("subscription is already cancelled")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgAlreadyCancelled))
		return
	default:
		if gwErr, ok := paymentprovider.AsGatewayError(err); ok {
			log.Error("refund processing failed", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgRefundFailed, gwErr.Message))
			return
		}
		log.Error("failed to cancel subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.MsgInternal))
		return
	}

	log.Info("subscription cancelled successfully")
	render.JSON(w, r, response.Message(response.MsgCancelled))
}
