package routes

import (
	"log/slog"

	"foodapp-api/auth"
	"foodapp-api/handlers"
	"foodapp-api/middleware"
	"foodapp-api/models"
	"foodapp-api/repository"
	"foodapp-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Users       *handlers.UserHandler
	Restaurants *handlers.RestaurantHandler
	Orders      *handlers.OrderHandler
}

// NewHandlers wires repositories and services for the given database
func NewHandlers(db *gorm.DB, tokens *auth.TokenManager, logger *slog.Logger) Handlers {
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	handlerLogger := logger.With("component", "http_handlers")

	return Handlers{
		Auth:        handlers.NewAuthHandler(services.NewAuthService(userRepo, tokens), handlerLogger),
		Users:       handlers.NewUserHandler(services.NewUserService(userRepo), handlerLogger),
		Restaurants: handlers.NewRestaurantHandler(services.NewCatalogService(restaurantRepo), handlerLogger),
		Orders:      handlers.NewOrderHandler(services.NewOrderService(orderRepo, restaurantRepo, logger), handlerLogger),
	}
}

// NewRouter builds the gin engine with middleware and all routes
func NewRouter(db *gorm.DB, tokens *auth.TokenManager, logger *slog.Logger) (*gin.Engine, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger), middleware.CORS())

	SetupRoutes(r, NewHandlers(db, tokens, logger), tokens)
	return r, nil
}

func SetupRoutes(r *gin.Engine, h Handlers, tokens *auth.TokenManager) {
	// ── Public routes ──────────────────────────────────────────────
	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)
	r.GET("/state-machine", handlers.GetStateMachineInfo)

	r.POST("/auth/login", h.Auth.Login)
	r.POST("/auth/register", h.Auth.Register)

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/")
	authed.Use(middleware.AuthRequired(tokens))
	{
		authed.GET("/me", h.Users.GetMe)

		// Restaurants & menus, country-scoped
		authed.GET("/restaurants", h.Restaurants.ListRestaurants)
		authed.GET("/restaurants/:id", h.Restaurants.GetRestaurant)
		authed.GET("/restaurants/:id/menu", h.Restaurants.GetMenu)

		// Orders
		authed.POST("/orders", h.Orders.PlaceOrder)
		authed.GET("/orders", h.Orders.ListOrders)
		authed.GET("/orders/my", h.Orders.GetMyOrders)
		authed.GET("/orders/:id", h.Orders.GetOrderDetail)
	}

	// ── Manager routes ─────────────────────────────────────────────
	managers := r.Group("/orders")
	managers.Use(middleware.AuthRequired(tokens), middleware.RoleRequired(models.RoleAdmin, models.RoleManager))
	{
		managers.POST("/:id/checkout", h.Orders.Checkout)
		managers.POST("/:id/cancel", h.Orders.CancelOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/")
	admin.Use(middleware.AuthRequired(tokens), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.DELETE("/orders/:id", h.Orders.DeleteOrder)
		admin.PATCH("/me/payment-method", h.Users.UpdateMyPaymentMethod)
		admin.PATCH("/users/:id/payment-method", h.Users.UpdateUserPaymentMethod)
	}
}
