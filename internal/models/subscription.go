// Package models содержит доменные структуры сервиса подписок:
// саму подписку, её статусы, входящий запрос и внешнее представление.
package models

import (
	"time"

	"github.com/magabrotheeeer/subscriptions/internal/lib/month"
)

// Status статус подписки.
type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// TimeLayout формат дат подписки во внешнем представлении и в хранилище (ISO-8601, UTC, миллисекунды).
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Subscription единственная хранимая сущность сервиса.
//
// Значение неизменяемо по смыслу: переходы (Cancel, WithStatus) возвращают копию.
// DateExpires вычисляется один раз при создании и дальше не редактируется.
type Subscription struct {
	Product         string
	MonthsPurchased int
	Status          Status
	DatePurchased   time.Time
	DateExpires     time.Time
}

// NewSubscription создаёт активную подписку, купленную в момент now.
func NewSubscription(product string, monthsPurchased int, now time.Time) Subscription {
	purchased := now.UTC().Truncate(time.Millisecond)
	return Subscription{
		Product:         product,
		MonthsPurchased: monthsPurchased,
		Status:          StatusActive,
		DatePurchased:   purchased,
		DateExpires:     ExpirationDate(purchased, monthsPurchased),
	}
}

// RestoreSubscription собирает подписку из сохранённых полей без пересчёта дат.
func RestoreSubscription(product string, monthsPurchased int, status Status, purchased, expires time.Time) Subscription {
	return Subscription{
		Product:         product,
		MonthsPurchased: monthsPurchased,
		Status:          status,
		DatePurchased:   purchased,
		DateExpires:     expires,
	}
}

// ExpirationDate дата окончания: дата покупки плюс monthsPurchased календарных месяцев.
func ExpirationDate(purchased time.Time, monthsPurchased int) time.Time {
	return month.Add(purchased, monthsPurchased)
}

// IsActive истинно, если статус active и срок ещё не истёк.
func (s Subscription) IsActive(now time.Time) bool {
	return s.Status == StatusActive && now.Before(s.DateExpires)
}

// IsExpired истинно, если срок истёк, независимо от сохранённого статуса.
func (s Subscription) IsExpired(now time.Time) bool {
	return !now.Before(s.DateExpires)
}

// Cancel возвращает копию подписки со статусом cancelled.
func (s Subscription) Cancel() Subscription {
	return s.WithStatus(StatusCancelled)
}

// WithStatus возвращает копию подписки с другим статусом.
func (s Subscription) WithStatus(status Status) Subscription {
	s.Status = status
	return s
}

// ToResponse проецирует все поля подписки во внешнее представление.
func (s Subscription) ToResponse() SubscriptionResponse {
	return SubscriptionResponse{
		Product:         s.Product,
		MonthsPurchased: s.MonthsPurchased,
		Status:          s.Status,
		DatePurchased:   FormatTime(s.DatePurchased),
		DateExpires:     FormatTime(s.DateExpires),
	}
}

// FormatTime форматирует дату подписки в TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime разбирает дату подписки. Принимает любой RFC 3339 вариант,
// в том числе с долями секунды.
func ParseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// SubscriptionRequest тело запроса на покупку или смену подписки.
type SubscriptionRequest struct {
	Product         string `json:"product" validate:"required"`
	MonthsPurchased int    `json:"monthsPurchased" validate:"required,min=1,max=12"`
}

// SubscriptionInput тело запроса в том виде, в каком оно пришло. Типы полей
// не фиксированы: проверку типов и диапазонов делает сервис.
type SubscriptionInput struct {
	Product         any `json:"product" swaggertype:"string" example:"premium"`
	MonthsPurchased any `json:"monthsPurchased" swaggertype:"integer" example:"3"`
}

// SubscriptionResponse внешнее представление подписки.
type SubscriptionResponse struct {
	Product         string `json:"product"`
	MonthsPurchased int    `json:"monthsPurchased"`
	Status          Status `json:"status"`
	DatePurchased   string `json:"datePurchased"`
	DateExpires     string `json:"dateExpires"`
}
