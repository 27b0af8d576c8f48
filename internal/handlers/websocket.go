package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/blslogistica/cargoflow/internal/services"
)

// WebSocketHandler upgrades the connection and hands it to the hub.
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		services.HandleWebSocket(hub, c.Writer, c.Request, userID)
	}
}
