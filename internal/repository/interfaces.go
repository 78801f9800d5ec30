package repository

import (
	"context"
	"time"

	"artiste_site/internal/domain/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	UserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error)
	TouchLastLogin(ctx context.Context, userID uuid.UUID) error
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}

type SectionRepository interface {
	ListSections(ctx context.Context, pageName string) ([]models.Section, error)
	ListPages(ctx context.Context) ([]string, error)
	GetSection(ctx context.Context, id uuid.UUID) (models.Section, error)
	CreateSection(ctx context.Context, section models.Section) (models.Section, error)
	UpdateSection(ctx context.Context, section models.Section) (models.Section, error)
	SetSectionVisibility(ctx context.Context, id uuid.UUID, visible bool) error
	DeleteSection(ctx context.Context, id uuid.UUID) error
	// SwapSectionOrder пишет новые порядки обеих секций в одной транзакции
	SwapSectionOrder(ctx context.Context, first, second models.SectionOrder) error
}

type PaintingRepository interface {
	ListPaintings(ctx context.Context, filter models.PaintingFilter) ([]models.Painting, error)
	GetPainting(ctx context.Context, id uuid.UUID) (models.Painting, error)
	CreatePainting(ctx context.Context, painting models.Painting) (models.Painting, error)
	UpdatePainting(ctx context.Context, painting models.Painting) (models.Painting, error)
	DeletePainting(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
}

type ExhibitionRepository interface {
	ListExhibitions(ctx context.Context) ([]models.Exhibition, error)
	GetExhibition(ctx context.Context, id uuid.UUID) (models.Exhibition, error)
	CreateExhibition(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error)
	UpdateExhibition(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error)
	DeleteExhibition(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error)
	ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, update models.OrderUpdate) (models.Order, error)
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	UpsertSettings(ctx context.Context, settings models.Settings) (models.Settings, error)
}

type CartRepository interface {
	GetCart(ctx context.Context, cartID string) (models.Cart, error)
	SaveCart(ctx context.Context, cart models.Cart) error
	DeleteCart(ctx context.Context, cartID string) error
}
