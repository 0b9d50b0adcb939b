package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ideadrop/content-api/internal/api/handler"
	"github.com/ideadrop/content-api/internal/api/middleware"
	"github.com/ideadrop/content-api/internal/core/ports"
	"github.com/ideadrop/content-api/internal/core/service"
	"github.com/ideadrop/content-api/internal/core/token"
)

// Dependencies carries everything the router needs. Repositories and the
// media store are interfaces so tests can swap in-memory implementations;
// production wiring happens in cmd/api.
type Dependencies struct {
	Users      ports.UserRepository
	Ideas      ports.IdeaRepository
	Books      ports.BookRepository
	Categories ports.CategoryRepository
	Products   ports.ProductRepository
	Media      ports.MediaStore

	Codec       *token.Codec
	Cookies     handler.CookieSettings
	PasswordMin int

	// Limiter may be nil, which disables auth rate limiting.
	Limiter middleware.Limiter
	// Health maps dependency names to readiness checks.
	Health map[string]handler.Pinger
	// EnableMetrics attaches the prometheus middleware and /metrics route.
	// Off in tests: the collectors register globally and would collide
	// across router instances.
	EnableMetrics bool

	Logger zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if deps.EnableMetrics {
		e.Use(echoprometheus.NewMiddleware("contentapi"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Services ---
	authService := service.NewAuthService(deps.Users, deps.Codec, deps.PasswordMin, deps.Logger)
	ideaService := service.NewIdeaService(deps.Ideas, deps.Logger)
	bookService := service.NewBookService(deps.Books, deps.Media, deps.Logger)
	categoryService := service.NewCategoryService(deps.Categories, deps.Media, deps.Logger)
	productService := service.NewProductService(deps.Products, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, deps.Cookies)
	ideaHandler := handler.NewIdeaHandler(ideaService)
	bookHandler := handler.NewBookHandler(bookService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)

	protect := middleware.Auth(deps.Codec, deps.Users)
	throttle := middleware.RateLimit(deps.Limiter)

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	auth.GET("", authHandler.List)
	auth.POST("/register", authHandler.Register, throttle)
	auth.POST("/login", authHandler.Login, throttle)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/refresh", authHandler.Refresh)

	// --- Ideas (reads public, mutations owner-only) ---
	ideas := v1.Group("/ideas")
	ideas.GET("", ideaHandler.List)
	ideas.GET("/:id", ideaHandler.Get)
	ideas.POST("", ideaHandler.Create, protect)
	ideas.PUT("/:id", ideaHandler.Update, protect)
	ideas.DELETE("/:id", ideaHandler.Delete, protect)

	// --- Books ---
	books := v1.Group("/books")
	books.GET("", bookHandler.List)
	books.POST("", bookHandler.Create)

	// --- Categories ---
	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)
	categories.PUT("/:id/photo", categoryHandler.UploadPhoto)

	// --- Products ---
	products := v1.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Health)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
