package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"artiste_site/internal/content"
	"artiste_site/internal/domain/models"
	jwtlib "artiste_site/internal/lib/jwt"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/lib/validate"
	"artiste_site/internal/middleware"
	"artiste_site/internal/realtime"
	carts "artiste_site/internal/services/cart_service"
	catalog "artiste_site/internal/services/catalog_service"
	"artiste_site/internal/services/editor"
	exhibitions "artiste_site/internal/services/exhibition_service"
	media "artiste_site/internal/services/media_service"
	orders "artiste_site/internal/services/order_service"
	sections "artiste_site/internal/services/section_service"
	users "artiste_site/internal/services/user_service"
	"artiste_site/internal/storage"
	"artiste_site/internal/transport/http/dto"
	"artiste_site/internal/transport/http/dto/response"

	ut "github.com/go-playground/universal-translator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "artiste_site/docs"
)

type UserService interface {
	Login(ctx context.Context, identifier, password string) (*models.TokenPair, models.User, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	RegisterNewUser(ctx context.Context, input dto.UserRegisterInput) (uuid.UUID, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	GetUserById(ctx context.Context, userID uuid.UUID) (models.User, error)
}

type SectionService interface {
	ListPages(ctx context.Context) ([]string, error)
	AdminSections(ctx context.Context, page string) ([]models.Section, error)
	Reload(ctx context.Context, page string) ([]models.Section, error)
	GetSection(ctx context.Context, id uuid.UUID) (models.Section, error)
	CreateSection(ctx context.Context, page string, key models.SectionKey) (models.Section, error)
	SaveSection(ctx context.Context, section models.Section) (models.Section, error)
	SetVisibility(ctx context.Context, id uuid.UUID, visible bool) (models.Section, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
	DuplicateSection(ctx context.Context, id uuid.UUID) (models.Section, error)
	MoveSection(ctx context.Context, id uuid.UUID, dir sections.Direction) ([]models.Section, error)
	PublicPage(ctx context.Context, page, locale string) ([]content.RenderedSection, error)
	PublicSection(ctx context.Context, page string, key models.SectionKey, locale string) (content.RenderedSection, error)
}

type EditorService interface {
	Open(ctx context.Context, sectionID uuid.UUID) (editor.Snapshot, error)
	Mutate(sectionID uuid.UUID, mutations ...editor.Mutation) (editor.Snapshot, error)
	Save(ctx context.Context, sectionID uuid.UUID) (editor.Snapshot, error)
	State(sectionID uuid.UUID) (editor.Snapshot, error)
	Close(ctx context.Context, sectionID uuid.UUID) error
	Discard(sectionID uuid.UUID)
}

type PreviewBroker interface {
	Subscribe(page string) chan realtime.Event
	Unsubscribe(page string, ch chan realtime.Event)
}

type CatalogService interface {
	ListPaintings(ctx context.Context, filter models.PaintingFilter) ([]models.Painting, error)
	GetPainting(ctx context.Context, id uuid.UUID) (models.Painting, error)
	CreatePainting(ctx context.Context, p models.Painting) (models.Painting, error)
	UpdatePainting(ctx context.Context, p models.Painting) (models.Painting, error)
	DeletePainting(ctx context.Context, id uuid.UUID) error
	GalleryCategories(ctx context.Context) (models.GalleryData, error)
}

type ExhibitionService interface {
	ListExhibitions(ctx context.Context) ([]models.Exhibition, error)
	GetExhibition(ctx context.Context, id uuid.UUID) (models.Exhibition, error)
	CreateExhibition(ctx context.Context, e models.Exhibition) (models.Exhibition, error)
	UpdateExhibition(ctx context.Context, e models.Exhibition) (models.Exhibition, error)
	DeleteExhibition(ctx context.Context, id uuid.UUID) error
	Calendar(ctx context.Context) (exhibitions.Calendar, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	Localized(ctx context.Context, locale string) (models.Settings, error)
	UpsertSettings(ctx context.Context, settings models.Settings) (models.Settings, error)
}

type CartService interface {
	GetCart(ctx context.Context, cartID string) (carts.CartView, error)
	AddItem(ctx context.Context, cartID string, paintingID uuid.UUID, quantity int) (carts.CartView, error)
	SetQuantity(ctx context.Context, cartID string, paintingID uuid.UUID, quantity int) (carts.CartView, error)
	RemoveItem(ctx context.Context, cartID string, paintingID uuid.UUID) (carts.CartView, error)
	Clear(ctx context.Context, cartID string) error
}

type OrderService interface {
	Checkout(ctx context.Context, cartID string, userID *uuid.UUID, req dto.CheckoutRequest) (orders.CheckoutResult, error)
	GetOrder(ctx context.Context, id uuid.UUID) (models.Order, error)
	ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	MyOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, update models.OrderUpdate) (models.Order, error)
	ExportXLSX(ctx context.Context, status models.OrderStatus, w io.Writer) error
}

type MediaService interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (models.Upload, error)
	Delete(ctx context.Context, path string) error
}

// Services - зависимости роутеров
type Services struct {
	Users       UserService
	Sections    SectionService
	Editor      EditorService
	Preview     PreviewBroker
	Catalog     CatalogService
	Exhibitions ExhibitionService
	Settings    SettingsService
	Carts       CartService
	Orders      OrderService
	Media       MediaService
}

type Routers struct {
	log *slog.Logger

	UserService       UserService
	SectionService    SectionService
	EditorService     EditorService
	Preview           PreviewBroker
	CatalogService    CatalogService
	ExhibitionService ExhibitionService
	SettingsService   SettingsService
	CartService       CartService
	OrderService      OrderService
	MediaService      MediaService

	// keepAlive - период комментариев-пингов в потоке превью
	keepAlive time.Duration
}

func NewRouter(log *slog.Logger, s Services) *Routers {
	return &Routers{
		log:               log,
		UserService:       s.Users,
		SectionService:    s.Sections,
		EditorService:     s.Editor,
		Preview:           s.Preview,
		CatalogService:    s.Catalog,
		ExhibitionService: s.Exhibitions,
		SettingsService:   s.Settings,
		CartService:       s.Carts,
		OrderService:      s.Orders,
		MediaService:      s.Media,
		keepAlive:         25 * time.Second,
	}
}

const (
	SessionName   = "session"
	SessionUserID = "user_id"
	cartCookie    = "cart_id"
	cartCookieTTL = 30 * 24 * time.Hour
)

// Health godoc
// @Summary Проверка доступности
// @Tags system
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/health [get]
func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "ok"})
}

// fail переводит ошибку сервиса в HTTP-ответ; для 5xx отдаётся исходное сообщение
func (r *Routers) fail(c echo.Context, log *slog.Logger, err error) error {
	status, code := classify(err)

	if status >= http.StatusInternalServerError {
		log.Error("request failed", sl.Err(err))
	} else {
		log.Warn("request rejected", slog.String("code", code), sl.Err(err))
	}

	return c.JSON(status, response.ErrorResponseWithDetails(code, err.Error()))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, users.ErrUserNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, editor.ErrSessionNotFound):
		return http.StatusNotFound, "editor_session_not_found"
	case errors.Is(err, users.ErrUserExist):
		return http.StatusConflict, "user_already_exists"
	case errors.Is(err, users.ErrInvalidCredentials):
		return http.StatusUnauthorized, "authentication_failed"
	case errors.Is(err, orders.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition"
	case errors.Is(err, orders.ErrPaintingUnavailable),
		errors.Is(err, carts.ErrPaintingUnavailable):
		return http.StatusConflict, "painting_unavailable"
	case errors.Is(err, orders.ErrEmptyCart):
		return http.StatusBadRequest, "empty_cart"
	case errors.Is(err, orders.ErrUnknownStatus),
		errors.Is(err, catalog.ErrInvalidPainting),
		errors.Is(err, exhibitions.ErrInvalidExhibition),
		errors.Is(err, media.ErrInvalidFolder),
		errors.Is(err, content.ErrIndexOutOfRange):
		return http.StatusBadRequest, "validation_failed"
	case errors.Is(err, storage.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "file_too_large"
	case errors.Is(err, storage.ErrInvalidFileType):
		return http.StatusUnsupportedMediaType, "invalid_file_type"
	case errors.Is(err, storage.ErrFileNotFound):
		return http.StatusNotFound, "file_not_found"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// bind декодирует и проверяет тело запроса
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

func (r *Routers) invalid(c echo.Context, log *slog.Logger, err error) error {
	trans, _ := c.Get(middleware.TranslatorKey).(ut.Translator)
	details := validate.Details(err, trans)

	log.Warn("invalid request", slog.String("details", details))

	return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", details))
}

func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

func (r *Routers) invalidID(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", "invalid "+name))
}

// currentUser читает пользователя из JWT, положенного echo-jwt в контекст
func currentUser(c echo.Context) (uuid.UUID, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, false
	}

	claims, err := jwtlib.FromToken(token)
	if err != nil {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

func locale(c echo.Context) string {
	if l := c.QueryParam("locale"); l != "" {
		return content.NormalizeLocale(l)
	}
	lang := strings.ToLower(c.Request().Header.Get("Accept-Language"))
	if len(lang) >= 2 {
		lang = lang[:2]
	}
	return content.NormalizeLocale(lang)
}
