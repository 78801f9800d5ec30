package http_test

import (
	"context"
	"io"
	"mime/multipart"

	"artiste_site/internal/content"
	"artiste_site/internal/domain/models"
	"artiste_site/internal/realtime"
	carts "artiste_site/internal/services/cart_service"
	"artiste_site/internal/services/editor"
	orders "artiste_site/internal/services/order_service"
	sections "artiste_site/internal/services/section_service"
	"artiste_site/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Login(ctx context.Context, identifier, password string) (*models.TokenPair, models.User, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Get(1).(models.User), args.Error(2)
	}
	return args.Get(0).(*models.TokenPair), args.Get(1).(models.User), args.Error(2)
}

func (m *MockUserService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenPair), args.Error(1)
}

func (m *MockUserService) RegisterNewUser(ctx context.Context, input dto.UserRegisterInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.User), args.Error(1)
}

type MockSectionService struct {
	mock.Mock
}

func (m *MockSectionService) ListPages(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSectionService) AdminSections(ctx context.Context, page string) ([]models.Section, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Section), args.Error(1)
}

func (m *MockSectionService) Reload(ctx context.Context, page string) ([]models.Section, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Section), args.Error(1)
}

func (m *MockSectionService) GetSection(ctx context.Context, id uuid.UUID) (models.Section, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Section), args.Error(1)
}

func (m *MockSectionService) CreateSection(ctx context.Context, page string, key models.SectionKey) (models.Section, error) {
	args := m.Called(ctx, page, key)
	return args.Get(0).(models.Section), args.Error(1)
}

func (m *MockSectionService) SaveSection(ctx context.Context, section models.Section) (models.Section, error) {
	args := m.Called(ctx, section)
	return args.Get(0).(models.Section), args.Error(1)
}

func (m *MockSectionService) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) (models.Section, error) {
	args := m.Called(ctx, id, visible)
	return args.Get(0).(models.Section), args.Error(1)
}

func (m *MockSectionService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSectionService) DuplicateSection(ctx context.Context, id uuid.UUID) (models.Section, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Section), args.Error(1)
}

func (m *MockSectionService) MoveSection(ctx context.Context, id uuid.UUID, dir sections.Direction) ([]models.Section, error) {
	args := m.Called(ctx, id, dir)
	return args.Get(0).([]models.Section), args.Error(1)
}

func (m *MockSectionService) PublicPage(ctx context.Context, page, locale string) ([]content.RenderedSection, error) {
	args := m.Called(ctx, page, locale)
	return args.Get(0).([]content.RenderedSection), args.Error(1)
}

func (m *MockSectionService) PublicSection(ctx context.Context, page string, key models.SectionKey, locale string) (content.RenderedSection, error) {
	args := m.Called(ctx, page, key, locale)
	return args.Get(0).(content.RenderedSection), args.Error(1)
}

// fakeEditor применяет мутации к черновику, чтобы проверять разбор запроса целиком
type fakeEditor struct {
	drafts map[uuid.UUID]models.Section
}

func newFakeEditor(sections ...models.Section) *fakeEditor {
	f := &fakeEditor{drafts: map[uuid.UUID]models.Section{}}
	for _, s := range sections {
		f.drafts[s.ID] = s.Clone()
	}
	return f
}

func (f *fakeEditor) Open(_ context.Context, id uuid.UUID) (editor.Snapshot, error) {
	return f.State(id)
}

func (f *fakeEditor) Mutate(id uuid.UUID, mutations ...editor.Mutation) (editor.Snapshot, error) {
	draft, ok := f.drafts[id]
	if !ok {
		return editor.Snapshot{}, editor.ErrSessionNotFound
	}
	next := draft.Clone()
	for _, m := range mutations {
		if err := m(&next); err != nil {
			return editor.Snapshot{}, err
		}
	}
	f.drafts[id] = next
	return editor.Snapshot{SectionID: id, State: editor.StateEditing, Dirty: true, Draft: next}, nil
}

func (f *fakeEditor) Save(_ context.Context, id uuid.UUID) (editor.Snapshot, error) {
	return f.State(id)
}

func (f *fakeEditor) State(id uuid.UUID) (editor.Snapshot, error) {
	draft, ok := f.drafts[id]
	if !ok {
		return editor.Snapshot{}, editor.ErrSessionNotFound
	}
	return editor.Snapshot{SectionID: id, State: editor.StateIdle, Draft: draft}, nil
}

func (f *fakeEditor) Close(_ context.Context, id uuid.UUID) error {
	delete(f.drafts, id)
	return nil
}

func (f *fakeEditor) Discard(id uuid.UUID) {
	delete(f.drafts, id)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, cartID string) (carts.CartView, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(carts.CartView), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, cartID string, paintingID uuid.UUID, quantity int) (carts.CartView, error) {
	args := m.Called(ctx, cartID, paintingID, quantity)
	return args.Get(0).(carts.CartView), args.Error(1)
}

func (m *MockCartService) SetQuantity(ctx context.Context, cartID string, paintingID uuid.UUID, quantity int) (carts.CartView, error) {
	args := m.Called(ctx, cartID, paintingID, quantity)
	return args.Get(0).(carts.CartView), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, cartID string, paintingID uuid.UUID) (carts.CartView, error) {
	args := m.Called(ctx, cartID, paintingID)
	return args.Get(0).(carts.CartView), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, cartID string, userID *uuid.UUID, req dto.CheckoutRequest) (orders.CheckoutResult, error) {
	args := m.Called(ctx, cartID, userID, req)
	return args.Get(0).(orders.CheckoutResult), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) MyOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrder(ctx context.Context, id uuid.UUID, update models.OrderUpdate) (models.Order, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *MockOrderService) ExportXLSX(ctx context.Context, status models.OrderStatus, w io.Writer) error {
	args := m.Called(ctx, status, w)
	return args.Error(0)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (models.Upload, error) {
	args := m.Called(ctx, file, folder)
	return args.Get(0).(models.Upload), args.Error(1)
}

func (m *MockMediaService) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type nopBroker struct{}

func (nopBroker) Subscribe(string) chan realtime.Event {
	return make(chan realtime.Event)
}

func (nopBroker) Unsubscribe(string, chan realtime.Event) {}
