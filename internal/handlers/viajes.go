package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/internal/services"
)

// GetViajes returns every trip, newest first.
func GetViajes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var viajes []models.Viaje
		if err := db.Order("fecha_inicio DESC").Find(&viajes).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch viajes"})
			return
		}
		c.JSON(200, viajes)
	}
}

// CreateViaje registers a new trip. A cleared fechaFin arrives as "" or null
// and is stored as NULL; see models.FechaHora.
func CreateViaje(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var viaje models.Viaje
		if err := c.ShouldBindJSON(&viaje); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Create(&viaje).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create viaje"})
			return
		}

		hub.NotifyCollectionChanged("viajes")
		c.JSON(201, viaje)
	}
}

func UpdateViaje(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var viaje models.Viaje
		if err := db.First(&viaje, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Viaje not found"})
			return
		}

		id := viaje.ID
		if err := c.ShouldBindJSON(&viaje); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		viaje.ID = id

		if err := db.Save(&viaje).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update viaje"})
			return
		}

		hub.NotifyCollectionChanged("viajes")
		c.JSON(200, viaje)
	}
}

func DeleteViaje(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var viaje models.Viaje
		if err := db.First(&viaje, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Viaje not found"})
			return
		}

		if err := db.Delete(&viaje).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete viaje"})
			return
		}

		hub.NotifyCollectionChanged("viajes")
		c.JSON(200, gin.H{"message": "Viaje eliminado"})
	}
}
