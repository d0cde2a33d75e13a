package handlers

import (
	"net/http"

	"goodjob/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "services": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "services": status})
}
