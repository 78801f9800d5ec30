package queue

import (
	"time"

	"github.com/google/uuid"
)

type OrderCreatedEvent struct {
	OrderID       uuid.UUID `json:"order_id"`
	CustomerEmail string    `json:"customer_email"`
	TotalAmount   float64   `json:"total_amount"`
	Items         int       `json:"items"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderID        uuid.UUID `json:"order_id"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	ChangedAt      time.Time `json:"changed_at"`
}
