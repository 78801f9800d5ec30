package models

import "github.com/google/uuid"

type CartLine struct {
	PaintingID uuid.UUID `json:"painting_id"`
	Quantity   int       `json:"quantity"`
}

// Cart хранится в redis одним ключом
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

// SetQuantity replaces the quantity of a line; quantity <= 0 removes it.
func (c *Cart) SetQuantity(paintingID uuid.UUID, quantity int) {
	for i, line := range c.Lines {
		if line.PaintingID != paintingID {
			continue
		}
		if quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
		c.Lines[i].Quantity = quantity
		return
	}
	if quantity > 0 {
		c.Lines = append(c.Lines, CartLine{PaintingID: paintingID, Quantity: quantity})
	}
}

// Add increments the quantity of a line.
func (c *Cart) Add(paintingID uuid.UUID, quantity int) {
	for _, line := range c.Lines {
		if line.PaintingID == paintingID {
			c.SetQuantity(paintingID, line.Quantity+quantity)
			return
		}
	}
	c.SetQuantity(paintingID, quantity)
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}
