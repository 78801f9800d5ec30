package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/metrics"
	"artiste_site/internal/queue"
	"artiste_site/internal/repository"
	"artiste_site/internal/storage"
	"artiste_site/internal/transport/http/dto"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrPaintingUnavailable = errors.New("painting is not for sale")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrUnknownStatus       = errors.New("unknown order status")
)

// PaymentGateway выдаёт ссылку на оплату заказа
type PaymentGateway interface {
	Enabled() bool
	CreateCheckout(ctx context.Context, order models.Order) (string, error)
}

// CheckoutResult: заказ создан даже если платёжный шлюз не ответил
type CheckoutResult struct {
	Order        models.Order `json:"order"`
	RedirectURL  string       `json:"redirect_url,omitempty"`
	PaymentError string       `json:"payment_error,omitempty"`
}

type OrderService struct {
	log       *slog.Logger
	orders    repository.OrderRepository
	paintings repository.PaintingRepository
	carts     repository.CartRepository
	publisher queue.Publisher
	payment   PaymentGateway
}

func NewOrderService(
	log *slog.Logger,
	orders repository.OrderRepository,
	paintings repository.PaintingRepository,
	carts repository.CartRepository,
	publisher queue.Publisher,
	payment PaymentGateway,
) *OrderService {
	return &OrderService{
		log:       log,
		orders:    orders,
		paintings: paintings,
		carts:     carts,
		publisher: publisher,
		payment:   payment,
	}
}

// Checkout превращает корзину в заказ со снимками картин и итоговой суммой
func (s *OrderService) Checkout(ctx context.Context, cartID string, userID *uuid.UUID, req dto.CheckoutRequest) (CheckoutResult, error) {
	const op = "services.OrderService.Checkout"

	log := s.log.With(
		slog.String("op", op),
		slog.String("cart_id", cartID),
	)

	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if cart.Empty() {
		return CheckoutResult{}, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	items := make(models.OrderItems, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		painting, err := s.paintings.GetPainting(ctx, line.PaintingID)
		if err != nil {
			log.Warn("painting from cart not found", slog.String("painting_id", line.PaintingID.String()), sl.Err(err))
			return CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
		}
		if !painting.ForSale() {
			return CheckoutResult{}, fmt.Errorf("%s: %s: %w", op, painting.Title, ErrPaintingUnavailable)
		}

		items = append(items, models.OrderItem{
			ID:       painting.ID,
			Title:    painting.Title,
			ImageURL: painting.ImageURL,
			Price:    *painting.Price,
			Quantity: line.Quantity,
		})
	}

	order := models.Order{
		UserID:          userID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		Items:           items,
		TotalAmount:     items.Total(),
		Status:          models.OrderPending,
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		order.Notes = &notes
	}

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		log.Error("failed to create order", sl.Err(err))
		return CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.OrdersTotal.WithLabelValues(string(created.Status)).Inc()
	log.Info("order created",
		slog.String("order_id", created.ID.String()),
		slog.Float64("total", created.TotalAmount),
	)

	if err := s.publisher.Publish(ctx, queue.RoutingOrderCreated, queue.OrderCreatedEvent{
		OrderID:       created.ID,
		CustomerEmail: created.CustomerEmail,
		TotalAmount:   created.TotalAmount,
		Items:         len(created.Items),
		CreatedAt:     created.CreatedAt,
	}); err != nil {
		log.Warn("failed to publish order.created", sl.Err(err))
	}

	if err := s.carts.DeleteCart(ctx, cartID); err != nil {
		log.Warn("failed to clear cart", sl.Err(err))
	}

	result := CheckoutResult{Order: created}

	if s.payment != nil && s.payment.Enabled() {
		url, err := s.payment.CreateCheckout(ctx, created)
		if err != nil {
			log.Error("payment redirect failed", sl.Err(err))
			result.PaymentError = err.Error()
		} else {
			result.RedirectURL = url
		}
	}

	return result, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error) {
	const op = "services.OrderService.GetOrder"

	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	const op = "services.OrderService.ListOrders"

	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%s: %q: %w", op, status, ErrUnknownStatus)
	}

	orders, err := s.orders.ListOrders(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

// MyOrders - история заказов покупателя. Отсутствующая таблица orders
// не ломает страницу: возвращается пустой список.
func (s *OrderService) MyOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	const op = "services.OrderService.MyOrders"

	orders, err := s.orders.ListOrdersByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrRelationMissing) {
			s.log.Warn("orders table missing, history skipped", slog.String("op", op), sl.Err(err))
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

// UpdateOrder применяет статус, трек-номер и заметки вместе после проверки перехода
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, update models.OrderUpdate) (models.Order, error) {
	const op = "services.OrderService.UpdateOrder"

	log := s.log.With(
		slog.String("op", op),
		slog.String("order_id", id.String()),
	)

	current, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if update.Status == "" {
		update.Status = current.Status
	}
	if !current.Status.CanTransition(update.Status) {
		log.Warn("rejected status transition",
			slog.String("from", string(current.Status)),
			slog.String("to", string(update.Status)),
		)
		return models.Order{}, fmt.Errorf("%s: %s -> %s: %w", op, current.Status, update.Status, ErrInvalidTransition)
	}

	updated, err := s.orders.UpdateOrder(ctx, id, update)
	if err != nil {
		log.Error("failed to update order", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if updated.Status != current.Status {
		metrics.OrdersTotal.WithLabelValues(string(updated.Status)).Inc()

		if err := s.publisher.Publish(ctx, queue.RoutingOrderStatusChanged, queue.OrderStatusChangedEvent{
			OrderID:        updated.ID,
			From:           string(current.Status),
			To:             string(updated.Status),
			TrackingNumber: models.Str(updated.TrackingNumber),
			ChangedAt:      time.Now().UTC(),
		}); err != nil {
			log.Warn("failed to publish order.status_changed", sl.Err(err))
		}
	}

	return updated, nil
}
