package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/internal/services"
)

// GetChoferes returns every driver.
func GetChoferes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var choferes []models.Chofer
		if err := db.Find(&choferes).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch choferes"})
			return
		}
		c.JSON(200, choferes)
	}
}

// CreateChofer registers a new driver.
func CreateChofer(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var chofer models.Chofer
		if err := c.ShouldBindJSON(&chofer); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Create(&chofer).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create chofer"})
			return
		}

		hub.NotifyCollectionChanged("choferes")
		c.JSON(201, chofer)
	}
}

// UpdateChofer applies the provided fields to an existing driver. Fields
// absent from the payload keep their stored values.
func UpdateChofer(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var chofer models.Chofer
		if err := db.First(&chofer, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Chofer not found"})
			return
		}

		id := chofer.ID
		if err := c.ShouldBindJSON(&chofer); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		chofer.ID = id

		if err := db.Save(&chofer).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update chofer"})
			return
		}

		hub.NotifyCollectionChanged("choferes")
		c.JSON(200, chofer)
	}
}

// DeleteChofer removes a driver. Trips referencing the driver are not
// checked here; the console is expected to prevent that case.
func DeleteChofer(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var chofer models.Chofer
		if err := db.First(&chofer, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Chofer not found"})
			return
		}

		if err := db.Delete(&chofer).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete chofer"})
			return
		}

		hub.NotifyCollectionChanged("choferes")
		c.JSON(200, gin.H{"message": "Chofer eliminado"})
	}
}
