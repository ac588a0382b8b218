package handlers

import (
	"net/http"

	"foodapp-api/models"
	"foodapp-api/statemachine"

	"github.com/gin-gonic/gin"
)

const serviceName = "foodapp-api"

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": serviceName,
		"roles":   []models.UserRole{models.RoleAdmin, models.RoleManager, models.RoleMember},
		"docs":    "/state-machine",
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// GetStateMachineInfo returns the order state machine for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var terminal []models.OrderStatus
	for _, s := range []models.OrderStatus{models.StatusCreated, models.StatusPaid, models.StatusCancelled} {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": terminal,
		"actors": gin.H{
			string(statemachine.EventCheckout): []models.UserRole{models.RoleAdmin, models.RoleManager},
			string(statemachine.EventCancel):   []models.UserRole{models.RoleAdmin, models.RoleManager},
			"delete":                           []models.UserRole{models.RoleAdmin},
		},
		"description": "Order lifecycle: CREATED -> PAID | CANCELLED, PAID -> CANCELLED",
	})
}
