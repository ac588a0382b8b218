package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"foodapp-api/access"
	"foodapp-api/middleware"
	"foodapp-api/models"
	"foodapp-api/services"

	"github.com/gin-gonic/gin"
)

type OrderLine struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1,max=1000"` // models.MaxQuantity
}

type PlaceOrderRequest struct {
	Items []OrderLine `json:"items" binding:"required,min=1,dive"`
}

type OrderHandler struct {
	orderService *services.OrderService
	logger       *slog.Logger
}

func NewOrderHandler(orderService *services.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, logger: logger}
}

// PlaceOrder creates a new order for the caller
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	lines := make([]services.LineRequest, len(req.Items))
	for i, it := range req.Items {
		lines[i] = services.LineRequest{MenuItemID: it.MenuItemID, Quantity: it.Quantity}
	}

	order, err := h.orderService.Create(c.Request.Context(), middleware.MustIdentity(c), lines)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders returns all orders placed by the caller
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	orders, err := h.orderService.ListMine(c.Request.Context(), middleware.MustIdentity(c))
	h.writeOrders(c, orders, err)
}

// ListOrders returns every order visible to the caller
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context(), middleware.MustIdentity(c))
	h.writeOrders(c, orders, err)
}

func (h *OrderHandler) writeOrders(c *gin.Context, orders []models.Order, err error) {
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order
func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	order, err := h.orderService.Get(c.Request.Context(), middleware.MustIdentity(c), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// Checkout pays for a CREATED order (payment is mocked)
func (h *OrderHandler) Checkout(c *gin.Context) {
	h.transition(c, h.orderService.Checkout, "Order paid successfully")
}

// CancelOrder cancels a CREATED or PAID order
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	h.transition(c, h.orderService.Cancel, "Order cancelled successfully")
}

func (h *OrderHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, actor access.Identity, id uint) (*models.Order, error),
	message string,
) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	order, err := apply(c.Request.Context(), middleware.MustIdentity(c), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "order": order})
}

// DeleteOrder removes an order and its items (admin only)
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), middleware.MustIdentity(c), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}
