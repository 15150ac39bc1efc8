package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/storelabs/store-api/docs"
	"github.com/storelabs/store-api/internal/api/handler"
	"github.com/storelabs/store-api/internal/api/middleware"
	"github.com/storelabs/store-api/internal/auth"
	"github.com/storelabs/store-api/internal/core/ports"
)

// Dependencies carries everything the router needs, constructed at startup.
// Services are interfaces so tests can mount the full route table over stubs.
type Dependencies struct {
	Auth     ports.AuthService
	Products ports.ProductService
	Todos    ports.TodoService
	Chat     ports.ChatService
	Payments ports.PaymentProvider
	Verifier *auth.Verifier
	Mongo    *mongo.Database
	Redis    *redis.Client
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store"))

	authGate := middleware.Auth(deps.Verifier)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Products: /all is the public browsing path, everything else is owned ---
	productHandler := handler.NewProductHandler(deps.Products)
	e.GET("/api/products/all", productHandler.ListAll)
	e.GET("/api/products", productHandler.List, authGate)
	e.POST("/api/products", productHandler.Create, authGate)
	e.DELETE("/api/products/:id", productHandler.Delete, authGate)

	// --- Todos ---
	todoHandler := handler.NewTodoHandler(deps.Todos)
	e.GET("/api/todos", todoHandler.List, authGate)
	e.POST("/api/todos", todoHandler.Create, authGate)
	e.PATCH("/api/todos/:id", todoHandler.Update, authGate)
	e.DELETE("/api/todos/:id", todoHandler.Delete, authGate)

	// --- Chat ---
	chatHandler := handler.NewChatHandler(deps.Chat)
	e.GET("/api/chat", chatHandler.List, authGate)
	e.POST("/api/chat", chatHandler.Post, authGate)

	// --- Payments ---
	paymentHandler := handler.NewPaymentHandler(deps.Payments)
	e.POST("/api/payments/create-payment-intent", paymentHandler.CreateIntent)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	if deps.Mongo != nil && deps.Redis != nil {
		readiness := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", readiness.Readiness) // readiness – are dependencies up?
	}

	return e
}
