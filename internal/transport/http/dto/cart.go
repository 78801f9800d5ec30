package dto

import "github.com/google/uuid"

type CartItemRequest struct {
	PaintingID uuid.UUID `json:"painting_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"gte=0,lte=99"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=99"`
}
