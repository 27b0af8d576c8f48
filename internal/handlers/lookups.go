package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/internal/services"
)

// The three read-only lookup endpoints share one Redis-backed path: serve from
// cache when possible, fall back to Postgres and repopulate.

func GetCurrencies(db *gorm.DB) gin.HandlerFunc {
	return lookupHandler(db, "currencies", func() interface{} { return &[]models.Currency{} })
}

func GetVehiculoEstados(db *gorm.DB) gin.HandlerFunc {
	return lookupHandler(db, "vehiculoEstados", func() interface{} { return &[]models.VehiculoEstado{} })
}

func GetViajeEstados(db *gorm.DB) gin.HandlerFunc {
	return lookupHandler(db, "viajeEstados", func() interface{} { return &[]models.ViajeEstado{} })
}

func lookupHandler(db *gorm.DB, name string, newSlice func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		cached := newSlice()
		hit, err := services.GetCachedLookup(c.Request.Context(), name, cached)
		if err != nil {
			// Cache trouble is not a reason to fail the request.
			log.Printf("lookup cache read for %s: %v", name, err)
		}
		if hit {
			c.JSON(200, cached)
			return
		}

		fresh := newSlice()
		if err := db.Find(fresh).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch " + name})
			return
		}

		if err := services.CacheLookup(c.Request.Context(), name, fresh); err != nil {
			log.Printf("lookup cache write for %s: %v", name, err)
		}
		c.JSON(200, fresh)
	}
}
