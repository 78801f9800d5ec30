package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"artiste_site/internal/lib/validate"
	appmiddleware "artiste_site/internal/middleware"
	httprouters "artiste_site/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type Options struct {
	Host          string
	Port          string
	JWTSecret     string
	SessionSecret string
	// UploadsDir раздаётся по пути UploadsPrefix
	UploadsDir    string
	UploadsPrefix string
	// секреты по умолчанию допустимы только в local
	Secure bool
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	opts    Options
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers) (*Server, error) {
	e := echo.New()
	e.HideBanner = true

	v, err := validate.New()
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}
	e.Validator = v

	store := sessions.NewCookieStore([]byte(opts.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	e.Use(session.Middleware(store))
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)
	e.Use(appmiddleware.Locale(v))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		opts:    opts,
	}, nil
}

// Handler отдаёт echo для httptest
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("port", s.opts.Port))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf("%s:%s", s.opts.Host, s.opts.Port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) jwtConfig(optional bool) echojwt.Config {
	cfg := echojwt.Config{
		SigningKey: []byte(s.opts.JWTSecret),
	}
	if optional {
		// анонимный покупатель проходит дальше без пользователя в контексте
		cfg.ContinueOnIgnoredError = true
		cfg.ErrorHandler = func(c echo.Context, err error) error {
			return nil
		}
	}
	return cfg
}

func (s *Server) BuildRouters() {
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if s.opts.UploadsDir != "" {
		s.e.Static(s.opts.UploadsPrefix, s.opts.UploadsDir)
	}

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.e.Group("/api/v1")
	{
		api.GET("/health", s.routers.Health)
		api.POST("/register", s.routers.Register)
		api.POST("/login", s.routers.Login)
		api.POST("/logout", s.routers.Logout)
		api.POST("/refresh", s.routers.Refresh)

		api.GET("/pages/:page", s.routers.GetPage)
		api.GET("/pages/:page/sections/:key", s.routers.GetPageSection)

		api.GET("/paintings", s.routers.ListPaintings)
		api.GET("/paintings/:id", s.routers.GetPainting)
		api.GET("/gallery/categories", s.routers.GalleryCategories)

		api.GET("/exhibitions", s.routers.ListExhibitions)
		api.GET("/exhibitions/calendar", s.routers.ExhibitionCalendar)

		api.GET("/settings", s.routers.GetSettings)

		optionalJWT := echojwt.WithConfig(s.jwtConfig(true))

		cart := api.Group("/cart", optionalJWT)
		{
			cart.GET("", s.routers.GetCart)
			cart.DELETE("", s.routers.ClearCart)
			cart.POST("/items", s.routers.AddCartItem)
			cart.PUT("/items/:painting_id", s.routers.SetCartItem)
			cart.DELETE("/items/:painting_id", s.routers.RemoveCartItem)
		}

		api.POST("/checkout", s.routers.Checkout, optionalJWT)

		me := api.Group("/me")
		me.Use(echojwt.WithConfig(s.jwtConfig(false)))
		{
			me.GET("/orders", s.routers.MyOrders)
		}

		admin := api.Group("/admin", s.routers.AdminOnly)
		{
			admin.GET("/pages", s.routers.ListPages)
			admin.GET("/pages/:page/sections", s.routers.AdminSections)
			admin.POST("/pages/:page/sections", s.routers.CreateSection)
			admin.GET("/pages/:page/preview", s.routers.PreviewStream)

			admin.GET("/sections/:id", s.routers.GetSection)
			admin.PUT("/sections/:id", s.routers.UpdateSection)
			admin.DELETE("/sections/:id", s.routers.DeleteSection)
			admin.PATCH("/sections/:id/visibility", s.routers.SetSectionVisibility)
			admin.POST("/sections/:id/duplicate", s.routers.DuplicateSection)
			admin.POST("/sections/:id/move", s.routers.MoveSection)

			admin.POST("/editor/:id", s.routers.OpenEditor)
			admin.GET("/editor/:id", s.routers.EditorState)
			admin.PATCH("/editor/:id", s.routers.MutateDraft)
			admin.POST("/editor/:id/save", s.routers.SaveDraft)
			admin.DELETE("/editor/:id", s.routers.CloseEditor)

			admin.POST("/paintings", s.routers.CreatePainting)
			admin.PUT("/paintings/:id", s.routers.UpdatePainting)
			admin.DELETE("/paintings/:id", s.routers.DeletePainting)

			admin.POST("/exhibitions", s.routers.CreateExhibition)
			admin.PUT("/exhibitions/:id", s.routers.UpdateExhibition)
			admin.DELETE("/exhibitions/:id", s.routers.DeleteExhibition)

			admin.GET("/orders", s.routers.ListOrders)
			admin.GET("/orders/export", s.routers.ExportOrders)
			admin.GET("/orders/:id", s.routers.GetOrder)
			admin.PATCH("/orders/:id", s.routers.UpdateOrder)

			admin.GET("/settings", s.routers.AdminSettings)
			admin.PUT("/settings", s.routers.UpsertSettings)

			admin.POST("/uploads", s.routers.Upload)
			admin.DELETE("/uploads", s.routers.DeleteUpload)
		}
	}
}
