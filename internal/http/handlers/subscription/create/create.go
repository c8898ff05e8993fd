// Package create реализует HTTP-обработчик покупки или смены подписки.
//
// Handler принимает JSON {product, monthsPurchased}, передаёт его сервису и
// возвращает сохранённую подписку. Ошибки валидации и платёжного сервиса
// отдаются как 400 с подробностями в details.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscriptions/internal/http/response"
	"github.com/magabrotheeeer/subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/subscriptions/internal/models"
	"github.com/magabrotheeeer/subscriptions/internal/paymentprovider"
	subservice "github.com/magabrotheeeer/subscriptions/internal/services/subscription"
)

// Handler обрабатывает POST /subscriptions.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики подписки
}

// Service описывает интерфейс бизнес-логики покупки подписки.
type Service interface {
	Validate(in models.SubscriptionInput) (models.SubscriptionRequest, error)
	Purchase(ctx context.Context, req models.SubscriptionRequest) (models.Subscription, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Купить или сменить подписку
// @Description Покупает подписку или меняет срок текущей. Для действующей подписки списывается или возвращается разница в цене.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body models.SubscriptionInput true "Продукт и число месяцев"
// @Success 200 {object} models.SubscriptionResponse "Сохранённая подписка"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или платёжного сервиса"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var in models.SubscriptionInput
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	// пустое тело проверяется как {}
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MsgValidationFailed, response.MsgInvalidRequestBody))
		return
	}
	log.Debug("request body decoded", slog.Any("request", in))

	req, err := h.service.Validate(in)
	if err != nil {
		var vErr *subservice.ValidationError
		if errors.As(err, &vErr) {
			log.Info("validation failed", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgValidationFailed, vErr.Details...))
			return
		}
		log.Error("failed to validate request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.MsgInternal))
		return
	}

	sub, err := h.service.Purchase(r.Context(), req)
	if err != nil {
		var vErr *subservice.ValidationError
		if errors.As(err, &vErr) {
			log.Info("validation failed", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgValidationFailed, vErr.Details...))
			return
		}
		if gwErr, ok := paymentprovider.AsGatewayError(err); ok {
			log.Error("payment processing failed", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgPaymentFailed, gwErr.Message))
			return
		}
		log.Error("failed to create/update subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(response.MsgInternal))
		return
	}

	resp := sub.ToResponse()
	log.Info("subscription created/updated successfully",
		slog.String("product", resp.Product),
		slog.Int("months_purchased", resp.MonthsPurchased),
		slog.String("status", string(resp.Status)),
	)
	render.JSON(w, r, resp)
}
