package events

import (
	"time"

	"github.com/kusamnavya/shopping-cart/internal/entities"
)

const (
	TypeOrderCreated   = "order.created"
	TypeOrderPaid      = "order.paid"
	TypeOrderCancelled = "order.cancelled"
)

// OrderEvent is the lifecycle notification published after an order
// transition commits. Consumers (fulfillment, notifications) key on
// OrderID.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	OrderKey   string    `json:"order_key"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	SubTotal   string    `json:"sub_total"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewOrderEvent(eventType string, o entities.Order) OrderEvent {
	return OrderEvent{
		Type:       eventType,
		OrderID:    o.OrderID.String(),
		OrderKey:   o.OrderKey,
		UserID:     o.UserID.String(),
		Status:     string(o.Status),
		SubTotal:   o.SubTotal.String(),
		OccurredAt: time.Now().UTC(),
	}
}
