package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/amaris/catalog-api/docs"
	"github.com/amaris/catalog-api/internal/api/handler"
	"github.com/amaris/catalog-api/internal/api/middleware"
	"github.com/amaris/catalog-api/internal/core/domain"
	"github.com/amaris/catalog-api/internal/core/service"
	"github.com/amaris/catalog-api/internal/infrastructure/config"
	mongodb "github.com/amaris/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/amaris/catalog-api/internal/infrastructure/db/redis"
	"github.com/amaris/catalog-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the notification dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("amaris"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	quoteRepo := mongodb.NewQuoteRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)
	quoteDedup := redisdb.NewQuoteDeduper(rdb)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, log)
	dispatcher := queue.NewDispatcher(cfg.FanoutWorkers, notificationService, log)
	quoteService := service.NewQuoteService(quoteRepo, productRepo, userRepo, quoteDedup, dispatcher, log)
	settingsService := service.NewSettingsService(settingsRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	productHandler := handler.NewProductHandler(catalogService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	auth := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public catalog ---
	v1 := e.Group("/v1")
	v1.GET("/categories", categoryHandler.List)
	v1.GET("/categories/slug/:slug", categoryHandler.GetBySlug)
	v1.GET("/categories/:id", categoryHandler.Get)
	v1.GET("/products", productHandler.List)
	v1.GET("/products/search", productHandler.Search)
	v1.GET("/products/slug/:slug", productHandler.GetBySlug)
	v1.GET("/products/:id", productHandler.Get)
	v1.POST("/quotes", quoteHandler.Submit)
	v1.GET("/settings", settingsHandler.Get)

	// --- Catalog administration ---
	catalog := v1.Group("", auth, middleware.Require(domain.ActionCatalogManage))
	catalog.POST("/categories", categoryHandler.Create)
	catalog.PUT("/categories/:id", categoryHandler.Update)
	catalog.DELETE("/categories/:id", categoryHandler.Delete)
	catalog.POST("/products", productHandler.Create)
	catalog.PUT("/products/:id", productHandler.Update)
	catalog.DELETE("/products/:id", productHandler.Delete)

	// --- Quote workflow ---
	quotes := v1.Group("/quotes", auth)
	quotes.GET("", quoteHandler.List, middleware.Require(domain.ActionQuotesView))
	quotes.GET("/stats", quoteHandler.Stats, middleware.Require(domain.ActionQuotesView))
	quotes.GET("/:id", quoteHandler.Get, middleware.Require(domain.ActionQuotesView))
	quotes.PUT("/:id", quoteHandler.Update, middleware.Require(domain.ActionQuotesManage))
	quotes.DELETE("/:id", quoteHandler.Delete, middleware.Require(domain.ActionQuotesManage))

	// --- User administration ---
	users := v1.Group("/users", auth)
	users.GET("", userHandler.List, middleware.Require(domain.ActionUsersView))
	users.GET("/:id", userHandler.Get, middleware.Require(domain.ActionUsersView))
	users.PUT("/:id", userHandler.Update, middleware.Require(domain.ActionUsersManage))
	users.DELETE("/:id", userHandler.Delete, middleware.Require(domain.ActionUsersManage))
	// Password change is self-service: the handler checks admin-or-self.
	users.PUT("/:id/password", userHandler.ChangePassword)

	// --- Notifications (caller's own inbox) ---
	notifications := v1.Group("/notifications", auth, middleware.Require(domain.ActionNotificationsView))
	notifications.GET("", notificationHandler.List)
	notifications.GET("/unread", notificationHandler.ListUnread)
	notifications.GET("/unread/count", notificationHandler.CountUnread)
	notifications.PUT("/read-all", notificationHandler.MarkAllRead)
	notifications.PUT("/:id/read", notificationHandler.MarkRead)

	// --- Settings administration ---
	v1.PUT("/settings", settingsHandler.Update, auth, middleware.Require(domain.ActionSettingsManage))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, dispatcher
}
