package dto

import "artiste_site/internal/domain/models"

// CheckoutRequest - данные покупателя при оформлении заказа
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"omitempty,max=32"`
	ShippingAddress string `json:"shipping_address" validate:"required,min=5"`
	Notes           string `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateOrderRequest: статус, трек-номер и заметки меняются одним запросом
type UpdateOrderRequest struct {
	Status         models.OrderStatus `json:"status" validate:"omitempty,oneof=pending paid processing shipped delivered cancelled"`
	TrackingNumber *string            `json:"tracking_number" validate:"omitempty,max=100"`
	Notes          *string            `json:"notes" validate:"omitempty,max=2000"`
}

func (r UpdateOrderRequest) ToDomain() models.OrderUpdate {
	return models.OrderUpdate{
		Status:         r.Status,
		TrackingNumber: r.TrackingNumber,
		Notes:          r.Notes,
	}
}
