// Package repository отображает подписку на хеш redis под фиксированным ключом.
//
// В хранилище не больше одной подписки: запись целиком заменяется при каждой покупке.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/subscriptions/internal/models"
)

// SubscriptionKey ключ хеша, в котором лежит единственная подписка.
const SubscriptionKey = "subscription"

const (
	fieldProduct         = "product"
	fieldMonthsPurchased = "monthsPurchased"
	fieldStatus          = "status"
	fieldDatePurchased   = "datePurchased"
	fieldDateExpires     = "dateExpires"
)

// ErrSubscriptionNotFound возвращается, когда в хранилище нет подписки.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository хранит подписку в redis.
type SubscriptionRepository struct {
	client redis.Cmdable
}

// NewSubscriptionRepository создаёт репозиторий поверх клиента redis.
func NewSubscriptionRepository(client redis.Cmdable) *SubscriptionRepository {
	return &SubscriptionRepository{client: client}
}

// GetSubscription возвращает сохранённую подписку или ErrSubscriptionNotFound.
func (r *SubscriptionRepository) GetSubscription(ctx context.Context) (models.Subscription, error) {
	const op = "storage.repository.GetSubscription"

	n, err := r.client.HLen(ctx, SubscriptionKey).Result()
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return models.Subscription{}, ErrSubscriptionNotFound
	}

	data, err := r.client.HGetAll(ctx, SubscriptionKey).Result()
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}

	sub, err := fromHash(data)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// AddOrReplaceSubscription записывает подписку, удаляя предыдущую, если она есть.
//
// Удаление и запись идут одной транзакцией MULTI/EXEC: между ними запись не может пропасть.
// DEL на отсутствующем ключе ничего не делает, поэтому предварительная проверка не нужна.
func (r *SubscriptionRepository) AddOrReplaceSubscription(ctx context.Context, sub models.Subscription) error {
	const op = "storage.repository.AddOrReplaceSubscription"

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, SubscriptionKey)
		pipe.HSet(ctx, SubscriptionKey, toHash(sub))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RemoveSubscription удаляет все поля подписки. Если подписки нет, ничего не делает.
// Сервис сейчас её не вызывает: отмена сохраняет запись со статусом cancelled.
// Метод дополняет GetSubscription и AddOrReplaceSubscription до полного контракта хранилища.
func (r *SubscriptionRepository) RemoveSubscription(ctx context.Context) error {
	const op = "storage.repository.RemoveSubscription"

	n, err := r.client.HLen(ctx, SubscriptionKey).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return nil
	}

	fields, err := r.client.HKeys(ctx, SubscriptionKey).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.client.HDel(ctx, SubscriptionKey, fields...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func toHash(sub models.Subscription) map[string]any {
	return map[string]any{
		fieldProduct:         sub.Product,
		fieldMonthsPurchased: strconv.Itoa(sub.MonthsPurchased),
		fieldStatus:          string(sub.Status),
		fieldDatePurchased:   models.FormatTime(sub.DatePurchased),
		fieldDateExpires:     models.FormatTime(sub.DateExpires),
	}
}

func fromHash(data map[string]string) (models.Subscription, error) {
	months, err := strconv.Atoi(data[fieldMonthsPurchased])
	if err != nil {
		return models.Subscription{}, fmt.Errorf("invalid %s: %w", fieldMonthsPurchased, err)
	}
	purchased, err := models.ParseTime(data[fieldDatePurchased])
	if err != nil {
		return models.Subscription{}, fmt.Errorf("invalid %s: %w", fieldDatePurchased, err)
	}
	expires, err := models.ParseTime(data[fieldDateExpires])
	if err != nil {
		return models.Subscription{}, fmt.Errorf("invalid %s: %w", fieldDateExpires, err)
	}

	return models.RestoreSubscription(
		data[fieldProduct],
		months,
		models.Status(data[fieldStatus]),
		purchased,
		expires,
	), nil
}
