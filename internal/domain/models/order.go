package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderPaid       OrderStatus = "paid"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderChain = map[OrderStatus]int{
	OrderPending:    0,
	OrderPaid:       1,
	OrderProcessing: 2,
	OrderShipped:    3,
	OrderDelivered:  4,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderChain[s]
	return ok || s == OrderCancelled
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransition: forward along the chain (skips allowed), cancel from any non-terminal state,
// and same-state updates so tracking or notes can change alone.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if !s.Valid() || !to.Valid() {
		return false
	}
	if s == to {
		return true
	}
	if s.Terminal() {
		return false
	}
	if to == OrderCancelled {
		return true
	}
	return orderChain[to] > orderChain[s]
}

// OrderItem - снимок картины на момент оформления
type OrderItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	ImageURL string    `json:"image_url"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

type OrderItems []OrderItem

func (it OrderItems) Value() (driver.Value, error) {
	if it == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(it)
}

func (it *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*it = OrderItems{}
		return nil
	case []byte:
		return json.Unmarshal(v, it)
	case string:
		return json.Unmarshal([]byte(v), it)
	default:
		return fmt.Errorf("order items: unsupported scan type %T", value)
	}
}

// Total returns Σ price × quantity.
func (it OrderItems) Total() float64 {
	var total float64
	for _, item := range it {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

type Order struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	UserID          *uuid.UUID  `json:"user_id" db:"user_id"`
	CustomerName    string      `json:"customer_name" db:"customer_name"`
	CustomerEmail   string      `json:"customer_email" db:"customer_email"`
	CustomerPhone   string      `json:"customer_phone" db:"customer_phone"`
	ShippingAddress string      `json:"shipping_address" db:"shipping_address"`
	Items           OrderItems  `json:"items" db:"items"`
	TotalAmount     float64     `json:"total_amount" db:"total_amount"`
	Status          OrderStatus `json:"status" db:"status"`
	TrackingNumber  *string     `json:"tracking_number" db:"tracking_number"`
	Notes           *string     `json:"notes" db:"notes"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderUpdate - изменения, которые администратор вносит одним запросом
type OrderUpdate struct {
	Status         OrderStatus
	TrackingNumber *string
	Notes          *string
}
