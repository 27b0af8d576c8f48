package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/blslogistica/cargoflow/internal/services"
)

// Health reports liveness plus the number of connected consoles.
func Health(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "ok",
			"consoles": hub.ConnectedClients(),
		})
	}
}
