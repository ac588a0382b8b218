package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"foodapp-api/errs"
	"foodapp-api/middleware"

	"github.com/gin-gonic/gin"
)

// respondError writes the classified status with an {"error": ...} body.
// Unclassified errors are logged and reported as a generic 500.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status := errs.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		logger.ErrorContext(c.Request.Context(), "Unhandled error",
			"request_id", middleware.RequestID(c), "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": errs.PublicMessage(err)})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// paramID parses a positive numeric path parameter
func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.Validation("Invalid " + name)
	}
	return uint(id), nil
}
