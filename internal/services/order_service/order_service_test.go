package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"artiste_site/internal/domain/models"
	"artiste_site/internal/queue"
	"artiste_site/internal/storage"
	"artiste_site/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, id uuid.UUID, u models.OrderUpdate) (models.Order, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(models.Order), args.Error(1)
}

type MockPaintingRepository struct {
	mock.Mock
}

func (m *MockPaintingRepository) ListPaintings(ctx context.Context, filter models.PaintingFilter) ([]models.Painting, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) GetPainting(ctx context.Context, id uuid.UUID) (models.Painting, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) CreatePainting(ctx context.Context, p models.Painting) (models.Painting, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) UpdatePainting(ctx context.Context, p models.Painting) (models.Painting, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Painting), args.Error(1)
}

func (m *MockPaintingRepository) DeletePainting(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaintingRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetCart(ctx context.Context, cartID string) (models.Cart, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(models.Cart), args.Error(1)
}

func (m *MockCartRepository) SaveCart(ctx context.Context, cart models.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteCart(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	args := m.Called(ctx, routingKey, event)
	return args.Error(0)
}

type MockPayment struct {
	mock.Mock
}

func (m *MockPayment) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockPayment) CreateCheckout(ctx context.Context, order models.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

type deps struct {
	orders    *MockOrderRepository
	paintings *MockPaintingRepository
	carts     *MockCartRepository
	publisher *MockPublisher
	payment   *MockPayment
}

func newDeps() deps {
	return deps{
		orders:    new(MockOrderRepository),
		paintings: new(MockPaintingRepository),
		carts:     new(MockCartRepository),
		publisher: new(MockPublisher),
		payment:   new(MockPayment),
	}
}

func (d deps) service() *OrderService {
	return NewOrderService(slog.Default(), d.orders, d.paintings, d.carts, d.publisher, d.payment)
}

var ctx = context.Background()

func price(v float64) *float64 { return &v }

var checkoutReq = dto.CheckoutRequest{
	CustomerName:    "Claire Martin",
	CustomerEmail:   "claire@example.com",
	ShippingAddress: "12 rue des Arts, Lyon",
}

func TestOrderService_Checkout(t *testing.T) {
	a := models.Painting{ID: uuid.New(), Title: "A", Price: price(50), Available: true}
	b := models.Painting{ID: uuid.New(), Title: "B", Price: price(100), Available: true}
	sold := models.Painting{ID: uuid.New(), Title: "Vendu", Price: price(10)}

	cart := models.Cart{ID: "c1", Lines: []models.CartLine{
		{PaintingID: a.ID, Quantity: 2},
		{PaintingID: b.ID, Quantity: 1},
	}}

	tests := []struct {
		name      string
		mockSetup func(d deps)
		check     func(t *testing.T, res CheckoutResult)
		wantErr   error
	}{
		{
			name: "order with total and redirect",
			mockSetup: func(d deps) {
				d.carts.On("GetCart", ctx, "c1").Return(cart, nil)
				d.paintings.On("GetPainting", ctx, a.ID).Return(a, nil)
				d.paintings.On("GetPainting", ctx, b.ID).Return(b, nil)
				d.orders.On("CreateOrder", ctx, mock.MatchedBy(func(o models.Order) bool {
					return o.TotalAmount == 200 && len(o.Items) == 2 && o.Status == models.OrderPending &&
						o.Items[0].Title == "A" && o.Items[0].Price == 50
				})).Return(models.Order{ID: uuid.New(), TotalAmount: 200, Status: models.OrderPending}, nil)
				d.publisher.On("Publish", ctx, queue.RoutingOrderCreated, mock.AnythingOfType("queue.OrderCreatedEvent")).Return(nil)
				d.carts.On("DeleteCart", ctx, "c1").Return(nil)
				d.payment.On("Enabled").Return(true)
				d.payment.On("CreateCheckout", ctx, mock.Anything).Return("https://pay.example/s/1", nil)
			},
			check: func(t *testing.T, res CheckoutResult) {
				assert.Equal(t, float64(200), res.Order.TotalAmount)
				assert.Equal(t, "https://pay.example/s/1", res.RedirectURL)
			},
		},
		{
			name: "payment failure keeps order",
			mockSetup: func(d deps) {
				d.carts.On("GetCart", ctx, "c1").Return(cart, nil)
				d.paintings.On("GetPainting", ctx, a.ID).Return(a, nil)
				d.paintings.On("GetPainting", ctx, b.ID).Return(b, nil)
				d.orders.On("CreateOrder", ctx, mock.Anything).Return(models.Order{ID: uuid.New(), TotalAmount: 200}, nil)
				d.publisher.On("Publish", ctx, mock.Anything, mock.Anything).Return(errors.New("broker down"))
				d.carts.On("DeleteCart", ctx, "c1").Return(nil)
				d.payment.On("Enabled").Return(true)
				d.payment.On("CreateCheckout", ctx, mock.Anything).Return("", errors.New("gateway timeout"))
			},
			check: func(t *testing.T, res CheckoutResult) {
				assert.Empty(t, res.RedirectURL)
				assert.Equal(t, "gateway timeout", res.PaymentError)
			},
		},
		{
			name: "empty cart",
			mockSetup: func(d deps) {
				d.carts.On("GetCart", ctx, "c1").Return(models.Cart{ID: "c1"}, nil)
			},
			wantErr: ErrEmptyCart,
		},
		{
			name: "missing painting",
			mockSetup: func(d deps) {
				d.carts.On("GetCart", ctx, "c1").Return(cart, nil)
				d.paintings.On("GetPainting", ctx, a.ID).Return(models.Painting{}, storage.ErrNotFound)
			},
			wantErr: storage.ErrNotFound,
		},
		{
			name: "painting sold meanwhile",
			mockSetup: func(d deps) {
				d.carts.On("GetCart", ctx, "c1").Return(models.Cart{ID: "c1", Lines: []models.CartLine{
					{PaintingID: sold.ID, Quantity: 1},
				}}, nil)
				d.paintings.On("GetPainting", ctx, sold.ID).Return(sold, nil)
			},
			wantErr: ErrPaintingUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			tt.mockSetup(d)

			res, err := d.service().Checkout(ctx, "c1", nil, checkoutReq)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				d.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			tt.check(t, res)
			d.orders.AssertExpectations(t)
			d.carts.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	id := uuid.New()
	tracking := "TRK123"

	tests := []struct {
		name      string
		from      models.OrderStatus
		update    models.OrderUpdate
		publishes bool
		wantErr   error
	}{
		{name: "forward with tracking", from: models.OrderPaid, update: models.OrderUpdate{Status: models.OrderShipped, TrackingNumber: &tracking}, publishes: true},
		{name: "skip steps", from: models.OrderPending, update: models.OrderUpdate{Status: models.OrderShipped}, publishes: true},
		{name: "cancel", from: models.OrderProcessing, update: models.OrderUpdate{Status: models.OrderCancelled}, publishes: true},
		{name: "notes only keeps status", from: models.OrderShipped, update: models.OrderUpdate{Notes: &tracking}},
		{name: "backward", from: models.OrderShipped, update: models.OrderUpdate{Status: models.OrderPaid}, wantErr: ErrInvalidTransition},
		{name: "from terminal", from: models.OrderDelivered, update: models.OrderUpdate{Status: models.OrderCancelled}, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			d.orders.On("GetOrder", ctx, id).Return(models.Order{ID: id, Status: tt.from}, nil).Once()

			want := tt.update
			if want.Status == "" {
				want.Status = tt.from
			}
			if tt.wantErr == nil {
				d.orders.On("UpdateOrder", ctx, id, want).
					Return(models.Order{ID: id, Status: want.Status, TrackingNumber: want.TrackingNumber}, nil).Once()
			}
			if tt.publishes {
				d.publisher.On("Publish", ctx, queue.RoutingOrderStatusChanged, mock.MatchedBy(func(e queue.OrderStatusChangedEvent) bool {
					return e.From == string(tt.from) && e.To == string(want.Status)
				})).Return(nil).Once()
			}

			got, err := d.service().UpdateOrder(ctx, id, tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				d.orders.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want.Status, got.Status)
			d.orders.AssertExpectations(t)
			d.publisher.AssertExpectations(t)
			if !tt.publishes {
				d.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOrderService_MyOrders(t *testing.T) {
	userID := uuid.New()

	t.Run("missing table downgraded", func(t *testing.T) {
		d := newDeps()
		d.orders.On("ListOrdersByUser", ctx, userID).Return([]models.Order(nil), storage.ErrRelationMissing)

		orders, err := d.service().MyOrders(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, orders)
		assert.NotNil(t, orders)
	})

	t.Run("other errors surface", func(t *testing.T) {
		d := newDeps()
		d.orders.On("ListOrdersByUser", ctx, userID).Return([]models.Order(nil), errors.New("permission denied"))

		_, err := d.service().MyOrders(ctx, userID)
		assert.ErrorContains(t, err, "permission denied")
	})
}

func TestOrderService_ListOrdersUnknownStatus(t *testing.T) {
	_, err := newDeps().service().ListOrders(ctx, "lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestOrderService_ExportXLSX(t *testing.T) {
	d := newDeps()
	d.orders.On("ListOrders", ctx, models.OrderStatus("")).Return([]models.Order{
		{
			ID:            uuid.New(),
			CustomerName:  "Claire Martin",
			CustomerEmail: "claire@example.com",
			Items:         models.OrderItems{{Title: "Marine", Price: 50, Quantity: 2}},
			TotalAmount:   100,
			Status:        models.OrderPaid,
			CreatedAt:     time.Date(2026, 5, 1, 14, 30, 0, 0, time.UTC),
		},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, d.service().ExportXLSX(ctx, "", &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Client", rows[0][2])
	assert.Equal(t, "Claire Martin", rows[1][2])
	assert.Equal(t, "Marine x2", rows[1][6])
	assert.Equal(t, "100", rows[1][7])
	assert.Equal(t, "paid", rows[1][8])
}
