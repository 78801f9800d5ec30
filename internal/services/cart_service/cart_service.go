package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/repository"
	"artiste_site/internal/storage"

	"github.com/google/uuid"
)

var ErrPaintingUnavailable = errors.New("painting is not for sale")

// CartLineView - строка корзины с актуальными данными картины
type CartLineView struct {
	Painting models.Painting `json:"painting"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
}

type CartView struct {
	ID    string         `json:"id"`
	Lines []CartLineView `json:"lines"`
	Total float64        `json:"total"`
}

type CartService struct {
	log       *slog.Logger
	carts     repository.CartRepository
	paintings repository.PaintingRepository
}

func NewCartService(log *slog.Logger, carts repository.CartRepository, paintings repository.PaintingRepository) *CartService {
	return &CartService{
		log:       log,
		carts:     carts,
		paintings: paintings,
	}
}

// NewCartID генерирует идентификатор для cookie cart_id
func NewCartID() string {
	return uuid.NewString()
}

// GetCart resolves every line against the catalog; lines whose painting
// was deleted are dropped from the view.
func (s *CartService) GetCart(ctx context.Context, cartID string) (CartView, error) {
	const op = "services.CartService.GetCart"

	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	view, err := s.view(ctx, cart)
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	return view, nil
}

func (s *CartService) AddItem(ctx context.Context, cartID string, paintingID uuid.UUID, quantity int) (CartView, error) {
	const op = "services.CartService.AddItem"

	log := s.log.With(
		slog.String("op", op),
		slog.String("cart_id", cartID),
		slog.String("painting_id", paintingID.String()),
	)

	painting, err := s.paintings.GetPainting(ctx, paintingID)
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}
	if !painting.ForSale() {
		log.Warn("painting not for sale")
		return CartView{}, fmt.Errorf("%s: %w", op, ErrPaintingUnavailable)
	}

	if quantity <= 0 {
		quantity = 1
	}

	return s.update(ctx, cartID, op, func(c *models.Cart) {
		c.Add(paintingID, quantity)
	})
}

// SetQuantity replaces the quantity of a line; quantity <= 0 removes it.
func (s *CartService) SetQuantity(ctx context.Context, cartID string, paintingID uuid.UUID, quantity int) (CartView, error) {
	const op = "services.CartService.SetQuantity"

	if quantity > 0 {
		painting, err := s.paintings.GetPainting(ctx, paintingID)
		if err != nil {
			return CartView{}, fmt.Errorf("%s: %w", op, err)
		}
		if !painting.ForSale() {
			return CartView{}, fmt.Errorf("%s: %w", op, ErrPaintingUnavailable)
		}
	}

	return s.update(ctx, cartID, op, func(c *models.Cart) {
		c.SetQuantity(paintingID, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, cartID string, paintingID uuid.UUID) (CartView, error) {
	const op = "services.CartService.RemoveItem"

	return s.update(ctx, cartID, op, func(c *models.Cart) {
		c.SetQuantity(paintingID, 0)
	})
}

func (s *CartService) Clear(ctx context.Context, cartID string) error {
	const op = "services.CartService.Clear"

	if err := s.carts.DeleteCart(ctx, cartID); err != nil {
		s.log.Error("failed to clear cart", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *CartService) update(ctx context.Context, cartID, op string, fn func(c *models.Cart)) (CartView, error) {
	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	fn(&cart)

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		s.log.Error("failed to save cart", slog.String("op", op), sl.Err(err))
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	view, err := s.view(ctx, cart)
	if err != nil {
		return CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	return view, nil
}

func (s *CartService) view(ctx context.Context, cart models.Cart) (CartView, error) {
	view := CartView{ID: cart.ID, Lines: []CartLineView{}}

	for _, line := range cart.Lines {
		painting, err := s.paintings.GetPainting(ctx, line.PaintingID)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return CartView{}, err
		}

		var subtotal float64
		if painting.Price != nil {
			subtotal = *painting.Price * float64(line.Quantity)
		}

		view.Lines = append(view.Lines, CartLineView{
			Painting: painting,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		view.Total += subtotal
	}

	return view, nil
}
