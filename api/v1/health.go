package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// HealthCheck reports liveness for the communication plan API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "commplan-api",
		"version": "1.0.0",
		"uptime":  time.Since(startedAt).Round(time.Second).String(),
	})
}
