// Package subscription содержит бизнес-логику жизненного цикла подписки:
// покупку, смену, отмену и согласование этих переходов с платёжным сервисом.
//
// Каждый запрос выполняется строго последовательно: проверка, чтение, расчёт
// разницы, вызов платёжного сервиса, запись. Ошибка платёжного сервиса
// прерывает запрос до записи. Блокировок между запросами нет: два
// одновременных запроса к единственной записи могут перезаписать результат друг друга.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/subscriptions/internal/metrics"
	"github.com/magabrotheeeer/subscriptions/internal/models"
	"github.com/magabrotheeeer/subscriptions/internal/paymentprovider"
	"github.com/magabrotheeeer/subscriptions/internal/storage/repository"
)

// Repository хранилище единственной подписки.
type Repository interface {
	// GetSubscription возвращает подписку или repository.ErrSubscriptionNotFound.
	GetSubscription(ctx context.Context) (models.Subscription, error)
	// AddOrReplaceSubscription целиком заменяет сохранённую подписку.
	AddOrReplaceSubscription(ctx context.Context, sub models.Subscription) error
}

// PaymentGateway платёжный сервис.
type PaymentGateway interface {
	Charge(ctx context.Context, amount int) (*paymentprovider.ProcessResponse, error)
	Refund(ctx context.Context, amount int) (*paymentprovider.ProcessResponse, error)
}

// EventPublisher получатель событий о сохранённых переходах.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// SubscriptionService координирует хранилище и платёжный сервис.
type SubscriptionService struct {
	repo          Repository
	gateway       PaymentGateway
	publisher     EventPublisher
	metrics       *metrics.Metrics
	log           *slog.Logger
	validate      *validator.Validate
	now           func() time.Time
	pricePerMonth int
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo Repository, gateway PaymentGateway, log *slog.Logger, opts ...Option) *SubscriptionService {
	s := &SubscriptionService{
		repo:          repo,
		gateway:       gateway,
		log:           log,
		validate:      validator.New(),
		now:           time.Now,
		pricePerMonth: DefaultPricePerMonth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get возвращает текущую подписку. Если срок истёк, статус expired сохраняется сразу.
func (s *SubscriptionService) Get(ctx context.Context) (models.Subscription, error) {
	const op = "services.subscription.Get"

	sub, err := s.read(ctx, op)
	if err != nil {
		return models.Subscription{}, err
	}

	if sub.IsExpired(s.now()) && sub.Status != models.StatusExpired {
		sub = sub.WithStatus(models.StatusExpired)
		if err := s.repo.AddOrReplaceSubscription(ctx, sub); err != nil {
			return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
		}
		s.log.Info("subscription marked as expired", slog.String("product", sub.Product))
		s.emit(ctx, models.EventExpired, sub, 0)
	}

	return sub, nil
}

// Purchase покупает новую подписку или меняет срок действующей.
//
// Для действующей подписки списывается или возвращается разница в цене,
// иначе списывается полная стоимость новой. Ошибка платёжного сервиса
// возвращается как *paymentprovider.GatewayError, и запись не выполняется.
func (s *SubscriptionService) Purchase(ctx context.Context, req models.SubscriptionRequest) (models.Subscription, error) {
	const op = "services.subscription.Purchase"

	if err := s.validateRequest(req); err != nil {
		return models.Subscription{}, err
	}

	existing, err := s.read(ctx, op)
	found := err == nil
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.Subscription{}, err
	}

	now := s.now()
	sub := models.NewSubscription(req.Product, req.MonthsPurchased, now)

	event := models.EventPurchased
	var amount int
	var payErr error
	if found && existing.IsActive(now) {
		event = models.EventChanged
		amount = Delta(existing.MonthsPurchased, sub.MonthsPurchased, s.pricePerMonth)
		switch {
		case amount > 0:
			_, payErr = s.gateway.Charge(ctx, amount)
		case amount < 0:
			_, payErr = s.gateway.Refund(ctx, -amount)
		}
	} else {
		amount = Price(sub.MonthsPurchased, s.pricePerMonth)
		_, payErr = s.gateway.Charge(ctx, amount)
	}
	if payErr != nil {
		s.log.Error("payment processing failed", sl.Op(op), slog.Int("amount", amount), sl.Err(payErr))
		return models.Subscription{}, fmt.Errorf("%s: %w", op, payErr)
	}

	if err := s.repo.AddOrReplaceSubscription(ctx, sub); err != nil {
		// платёж уже проведён: компенсации нет, только лог
		s.log.Error("subscription not saved after successful payment",
			sl.Op(op), slog.Int("amount", amount), sl.Err(err))
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription created/updated",
		slog.String("product", sub.Product),
		slog.Int("months_purchased", sub.MonthsPurchased),
		slog.Int("amount", amount),
	)
	s.emit(ctx, event, sub, amount)

	return sub, nil
}

// Cancel отменяет подписку. Действующая подписка возвращается полной стоимостью.
func (s *SubscriptionService) Cancel(ctx context.Context) error {
	const op = "services.subscription.Cancel"

	existing, err := s.read(ctx, op)
	if err != nil {
		return err
	}
	if existing.Status == models.StatusCancelled {
		return ErrAlreadyCancelled
	}

	var amount int
	if existing.IsActive(s.now()) {
		amount = Price(existing.MonthsPurchased, s.pricePerMonth)
		if _, err := s.gateway.Refund(ctx, amount); err != nil {
			s.log.Error("refund processing failed", sl.Op(op), slog.Int("amount", amount), sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	cancelled := existing.Cancel()
	if err := s.repo.AddOrReplaceSubscription(ctx, cancelled); err != nil {
		s.log.Error("subscription not saved after cancellation",
			sl.Op(op), slog.Int("refunded", amount), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription cancelled",
		slog.String("product", cancelled.Product),
		slog.Int("refunded", amount),
	)
	s.emit(ctx, models.EventCancelled, cancelled, -amount)

	return nil
}

func (s *SubscriptionService) read(ctx context.Context, op string) (models.Subscription, error) {
	sub, err := s.repo.GetSubscription(ctx)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return models.Subscription{}, ErrNotFound
	}
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// emit учитывает переход и публикует событие. Ошибка публикации не влияет на запрос.
func (s *SubscriptionService) emit(ctx context.Context, event models.Event, sub models.Subscription, amount int) {
	s.metrics.ObserveTransition(string(event))

	if s.publisher == nil {
		return
	}
	msg := models.SubscriptionEvent{
		Event:        event,
		Subscription: sub.ToResponse(),
		Amount:       amount,
		OccurredAt:   s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, string(event), msg); err != nil {
		s.log.Warn("failed to publish subscription event", slog.String("event", string(event)), sl.Err(err))
	}
}
