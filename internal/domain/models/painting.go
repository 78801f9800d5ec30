package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Painting - работа из каталога
type Painting struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	ImageURL      string    `json:"image_url" db:"image_url"`
	Price         *float64  `json:"price" db:"price"`
	OriginalPrice *float64  `json:"original_price" db:"original_price"`
	Width         *float64  `json:"width" db:"width"`
	Height        *float64  `json:"height" db:"height"`
	Category      string    `json:"category" db:"category"`
	Available     bool      `json:"available" db:"available"`
	Description   string    `json:"description" db:"description"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ForSale reports whether the painting can be put in a cart.
func (p Painting) ForSale() bool {
	return p.Available && p.Price != nil
}

// DiscountPercent returns the rounded reduction when original_price exceeds price, else 0.
func (p Painting) DiscountPercent() int {
	if p.Price == nil || p.OriginalPrice == nil || *p.OriginalPrice <= 0 || *p.OriginalPrice <= *p.Price {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - *p.Price) / *p.OriginalPrice * 100))
}

// PaintingFilter - параметры выборки каталога
type PaintingFilter struct {
	Categories    []string
	AvailableOnly bool
	Limit         uint64
	Offset        uint64
}
