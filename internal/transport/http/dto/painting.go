package dto

import (
	"artiste_site/internal/domain/models"

	"github.com/google/uuid"
)

type PaintingRequest struct {
	Title         string   `json:"title" validate:"required,max=300"`
	ImageURL      string   `json:"image_url" validate:"omitempty,max=1000"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gte=0"`
	Width         *float64 `json:"width" validate:"omitempty,gt=0"`
	Height        *float64 `json:"height" validate:"omitempty,gt=0"`
	Category      string   `json:"category" validate:"omitempty,max=100"`
	Available     bool     `json:"available"`
	Description   string   `json:"description"`
}

func (r PaintingRequest) ToDomain(id uuid.UUID) models.Painting {
	return models.Painting{
		ID:            id,
		Title:         r.Title,
		ImageURL:      r.ImageURL,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Width:         r.Width,
		Height:        r.Height,
		Category:      r.Category,
		Available:     r.Available,
		Description:   r.Description,
	}
}

// PaintingResponse добавляет вычисляемые поля для витрины
type PaintingResponse struct {
	models.Painting
	ForSale         bool `json:"for_sale"`
	DiscountPercent int  `json:"discount_percent"`
}

func NewPaintingResponse(p models.Painting) PaintingResponse {
	return PaintingResponse{
		Painting:        p,
		ForSale:         p.ForSale(),
		DiscountPercent: p.DiscountPercent(),
	}
}

func NewPaintingList(list []models.Painting) []PaintingResponse {
	out := make([]PaintingResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewPaintingResponse(p))
	}
	return out
}

type PaintingQuery struct {
	Categories    []string `query:"category"`
	AvailableOnly bool     `query:"available"`
	Limit         uint64   `query:"limit" validate:"lte=200"`
	Offset        uint64   `query:"offset"`
}

func (q PaintingQuery) ToFilter() models.PaintingFilter {
	return models.PaintingFilter{
		Categories:    q.Categories,
		AvailableOnly: q.AvailableOnly,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
}
