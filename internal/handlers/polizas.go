package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/internal/services"
)

// GetPolizas returns every policy, soonest expiry first.
func GetPolizas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var polizas []models.Poliza
		if err := db.Order("fin_vigencia ASC").Find(&polizas).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch polizas"})
			return
		}
		c.JSON(200, polizas)
	}
}

func CreatePoliza(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var poliza models.Poliza
		if err := c.ShouldBindJSON(&poliza); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Create(&poliza).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create poliza"})
			return
		}

		hub.NotifyCollectionChanged("polizas")
		c.JSON(201, poliza)
	}
}

func UpdatePoliza(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var poliza models.Poliza
		if err := db.First(&poliza, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Poliza not found"})
			return
		}

		id := poliza.ID
		if err := c.ShouldBindJSON(&poliza); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		poliza.ID = id

		if err := db.Save(&poliza).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update poliza"})
			return
		}

		hub.NotifyCollectionChanged("polizas")
		c.JSON(200, poliza)
	}
}

func DeletePoliza(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var poliza models.Poliza
		if err := db.First(&poliza, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Poliza not found"})
			return
		}

		if err := db.Delete(&poliza).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete poliza"})
			return
		}

		hub.NotifyCollectionChanged("polizas")
		c.JSON(200, gin.H{"message": "Póliza eliminada"})
	}
}
