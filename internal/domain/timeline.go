package domain

import "time"

// Типы событий жизненного цикла заказа.
const (
	// TimelineEventOrderCreated — заказ добавлен в очередь pending.
	TimelineEventOrderCreated = "OrderCreated"
	// TimelineEventOrderDispatched — заказ обработан и перенесён в архив completed.
	TimelineEventOrderDispatched = "OrderDispatched"
)

// TimelineEvent описывает событие в жизненном цикле заказа.
type TimelineEvent struct {
	ID       string
	OrderID  string
	Type     string
	Occurred time.Time
}
