package handlers

import (
	"log/slog"
	"net/http"

	"foodapp-api/middleware"
	"foodapp-api/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	catalog *services.CatalogService
	logger  *slog.Logger
}

func NewRestaurantHandler(catalog *services.CatalogService, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{catalog: catalog, logger: logger}
}

// ListRestaurants returns the restaurants in the caller's country, with menus
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.catalog.ListRestaurants(c.Request.Context(), middleware.MustIdentity(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	restaurant, err := h.catalog.GetRestaurant(c.Request.Context(), middleware.MustIdentity(c), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the menu for a specific restaurant
func (h *RestaurantHandler) GetMenu(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	menu, err := h.catalog.GetMenu(c.Request.Context(), middleware.MustIdentity(c), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant_id": id,
		"count":         len(menu),
		"menu":          menu,
	})
}
