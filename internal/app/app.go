package app

import (
	"context"
	"log/slog"

	httpapp "artiste_site/internal/app/http"
	"artiste_site/internal/config"
	"artiste_site/internal/lib/logger/sl"
	"artiste_site/internal/payment"
	"artiste_site/internal/queue"
	"artiste_site/internal/realtime"
	"artiste_site/internal/repository"
	carts "artiste_site/internal/services/cart_service"
	catalog "artiste_site/internal/services/catalog_service"
	"artiste_site/internal/services/editor"
	exhibitions "artiste_site/internal/services/exhibition_service"
	media "artiste_site/internal/services/media_service"
	orders "artiste_site/internal/services/order_service"
	sections "artiste_site/internal/services/section_service"
	settings "artiste_site/internal/services/settings_service"
	tokens "artiste_site/internal/services/token_service"
	users "artiste_site/internal/services/user_service"
	filestorage "artiste_site/internal/storage/filestorage"
	"artiste_site/internal/storage/postgresql"
	redisapp "artiste_site/internal/storage/redis"
	httprouters "artiste_site/internal/transport/http"

	"github.com/patrickmn/go-cache"
)

// GalleryPage - страница, на которой живёт секция gallery
const GalleryPage = "galerie"

type App struct {
	HTTPServer *httpapp.Server
	Editor     *editor.Manager

	log     *slog.Logger
	storage *postgresql.Storage
	redis   *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		panic(err)
	}

	if err := storage.Migrate(ctx); err != nil {
		panic(err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	if err := redisClient.HealthCheck(ctx); err != nil {
		log.Warn("redis is not reachable, cart and refresh tokens will fail", sl.Err(err))
	}

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		panic(err)
	}

	repo := repository.New(storage.Pool(), redisClient, cfg.CartTTL)

	broker := realtime.NewBroker()
	pageCache := cache.New(cfg.Cache.TTL, cfg.Cache.Cleanup)

	tokenService := tokens.NewTokenService(repo.Token, cfg.HTTP.JWTSecret, cfg.TokenTTL)
	userService := users.NewUserService(log, repo.User, tokenService)

	sectionService := sections.NewSectionService(log, repo.Section, repo.Painting, pageCache, broker)
	editorManager := editor.NewManager(log, sectionService, editor.RealScheduler, cfg.Editor.AutosaveDelay)

	catalogService := catalog.NewCatalogService(log, repo.Painting, sectionService, GalleryPage)
	exhibitionService := exhibitions.NewExhibitionService(log, repo.Exhibition)
	settingsService := settings.NewSettingsService(log, repo.Settings)
	cartService := carts.NewCartService(log, repo.Cart, repo.Painting)

	publisher := queue.NewPublisher(log, cfg.AMQP.URL, cfg.AMQP.Exchange)
	paymentClient := payment.NewClient(cfg.Checkout.Endpoint, cfg.Checkout.Timeout)
	orderService := orders.NewOrderService(log, repo.Order, repo.Painting, repo.Cart, publisher, paymentClient)

	mediaService := media.NewMediaService(log, fileStorage, cfg.FileStorage.MaxSize)

	routers := httprouters.NewRouter(log, httprouters.Services{
		Users:       userService,
		Sections:    sectionService,
		Editor:      editorManager,
		Preview:     broker,
		Catalog:     catalogService,
		Exhibitions: exhibitionService,
		Settings:    settingsService,
		Carts:       cartService,
		Orders:      orderService,
		Media:       mediaService,
	})

	server, err := httpapp.New(log, httpapp.Options{
		Host:          cfg.HTTP.Host,
		Port:          cfg.HTTP.Port,
		JWTSecret:     cfg.HTTP.JWTSecret,
		SessionSecret: cfg.HTTP.SessionSecret,
		UploadsDir:    fileStorage.BaseDir(),
		UploadsPrefix: "/uploads",
		Secure:        cfg.Env != "local",
	}, routers)
	if err != nil {
		panic(err)
	}

	return &App{
		HTTPServer: server,
		Editor:     editorManager,
		log:        log,
		storage:    storage,
		redis:      redisClient,
	}
}

// Stop сохраняет открытые черновики до закрытия соединений
func (a *App) Stop(ctx context.Context) {
	if err := a.HTTPServer.Stop(ctx); err != nil {
		a.log.Error("http server stop", sl.Err(err))
	}

	a.Editor.Shutdown(ctx)

	if err := a.redis.Stop(); err != nil {
		a.log.Error("redis stop", sl.Err(err))
	}

	a.storage.Stop()
}
