package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"qkart/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries the services the router depends on. Interfaces are narrow so
// tests can stub them.
type Deps struct {
	AuthSvc     AuthService
	CatalogSvc  CatalogService
	CartSvc     CartService
	CheckoutSvc CheckoutService
	AccountSvc  AccountService
}

type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

type CartService interface {
	Get(ctx context.Context, u *domain.User) []domain.CartLine
	Set(ctx context.Context, u *domain.User, productID string, qty int) ([]domain.CartLine, error)
}

type CheckoutService interface {
	Submit(ctx context.Context, u *domain.User, addressID string) error
}

type AccountService interface {
	Addresses(ctx context.Context, u *domain.User) []domain.Address
	Add(ctx context.Context, u *domain.User, text string) ([]domain.Address, error)
	Delete(ctx context.Context, u *domain.User, addressID string) ([]domain.Address, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *sql.DB, deps Deps) (*gin.Engine, error) {
	if deps.AuthSvc == nil || deps.CatalogSvc == nil || deps.CartSvc == nil || deps.CheckoutSvc == nil || deps.AccountSvc == nil {
		return nil, errors.New("httpserver: all services are required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{logger: logger, deps: deps}
	authed := requireAuth(deps.AuthSvc)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)

		api.GET("/products", h.listProducts)
		api.GET("/products/search", h.searchProducts)
		api.GET("/products/:id", h.getProduct)

		api.GET("/cart", authed, h.getCart)
		api.POST("/cart", authed, h.updateCart)
		api.POST("/cart/checkout", authed, h.checkout)

		api.GET("/user/addresses", authed, h.listAddresses)
		api.POST("/user/addresses", authed, h.addAddress)
		api.DELETE("/user/addresses/:id", authed, h.deleteAddress)
	}

	return router, nil
}

type handlers struct {
	logger *log.Logger
	deps   Deps
}
