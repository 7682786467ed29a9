package handlers

import (
	"net/http"
	"time"

	"aarasalon/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /api/health.
func HealthHandler(c *gin.Context) {
	status := "OK"
	if !utils.GetHealthStatus().Mongo {
		status = "DEGRADED"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  status,
		"message": "AARA Salon API is running smoothly",
		"time":    time.Now().Format(time.RFC3339),
	})
}
