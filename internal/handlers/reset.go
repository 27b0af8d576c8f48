package handlers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/database"
	"github.com/blslogistica/cargoflow/internal/services"
)

// resetState tracks the one reset that may run at a time. Development
// convenience; a reset drops and reseeds every table.
type resetState struct {
	mu         sync.Mutex
	InProgress bool
	StartedAt  *string
	FinishedAt *string
	LastError  *string
}

var reset resetState

// ResetDatabase starts an asynchronous drop/recreate/seed and returns 202.
// A second request while one is running also gets 202 with a notice.
func ResetDatabase(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		reset.mu.Lock()
		if reset.InProgress {
			reset.mu.Unlock()
			c.JSON(202, gin.H{"message": "Reset already in progress"})
			return
		}
		now := time.Now().Format("2006-01-02T15:04:05")
		reset.InProgress = true
		reset.StartedAt = &now
		reset.FinishedAt = nil
		reset.LastError = nil
		reset.mu.Unlock()

		go func() {
			err := database.Reset(db)
			if err == nil {
				if cerr := services.InvalidateLookups(context.Background()); cerr != nil {
					log.Printf("lookup cache invalidation after reset: %v", cerr)
				}
				for _, collection := range []string{
					"choferes", "camiones", "acoplados", "viajes", "polizas",
					"tiposDeGasto", "gastos",
				} {
					hub.NotifyCollectionChanged(collection)
				}
			}

			finished := time.Now().Format("2006-01-02T15:04:05")
			reset.mu.Lock()
			reset.InProgress = false
			reset.FinishedAt = &finished
			if err != nil {
				msg := err.Error()
				reset.LastError = &msg
				log.Printf("database reset failed: %v", err)
			}
			reset.mu.Unlock()
		}()

		c.JSON(202, gin.H{"message": "Reset started"})
	}
}

// GetResetStatus reports the state of the last reset.
func GetResetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		reset.mu.Lock()
		defer reset.mu.Unlock()
		c.JSON(200, gin.H{
			"in_progress": reset.InProgress,
			"started_at":  reset.StartedAt,
			"finished_at": reset.FinishedAt,
			"last_error":  reset.LastError,
		})
	}
}
