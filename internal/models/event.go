package models

import "time"

// Event тип события жизненного цикла подписки, он же routing key при публикации.
type Event string

const (
	EventPurchased Event = "subscription.purchased"
	EventChanged   Event = "subscription.changed"
	EventCancelled Event = "subscription.cancelled"
	EventExpired   Event = "subscription.expired"
)

// SubscriptionEvent сообщение о сохранённом переходе подписки.
type SubscriptionEvent struct {
	Event        Event                `json:"event"`
	Subscription SubscriptionResponse `json:"subscription"`
	Amount       int                  `json:"amount,omitempty"`
	OccurredAt   time.Time            `json:"occurredAt"`
}
