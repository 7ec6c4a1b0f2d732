package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health handles GET /api/health. Stateless: a fixed payload plus the current
// timestamp, no validation, no side effects.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Message:   "API is running successfully!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
