package handlers

import (
	"log/slog"
	"net/http"

	"foodapp-api/middleware"
	"foodapp-api/models"
	"foodapp-api/services"

	"github.com/gin-gonic/gin"
)

type userResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          models.UserRole `json:"role"`
	Country       models.Country  `json:"country"`
	PaymentMethod *string         `json:"payment_method"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Country:       u.Country,
		PaymentMethod: u.PaymentMethod,
	}
}

type PaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,min=3"`
}

type UserHandler struct {
	userService *services.UserService
	logger      *slog.Logger
}

func NewUserHandler(userService *services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// GetMe returns the authenticated user's profile
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.Me(c.Request.Context(), middleware.MustIdentity(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateMyPaymentMethod changes the caller's own payment method (admin only)
func (h *UserHandler) UpdateMyPaymentMethod(c *gin.Context) {
	id := middleware.MustIdentity(c)
	h.updatePaymentMethod(c, id.UserID)
}

// UpdateUserPaymentMethod changes any user's payment method (admin only)
func (h *UserHandler) UpdateUserPaymentMethod(c *gin.Context) {
	userID, err := paramID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.updatePaymentMethod(c, userID)
}

func (h *UserHandler) updatePaymentMethod(c *gin.Context, userID uint) {
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.userService.UpdatePaymentMethod(c.Request.Context(), middleware.MustIdentity(c), userID, req.PaymentMethod)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "payment_method": user.PaymentMethod})
}
