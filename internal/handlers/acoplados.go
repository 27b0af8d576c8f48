package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/internal/services"
)

// GetAcoplados returns every trailer.
func GetAcoplados(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var acoplados []models.Acoplado
		if err := db.Find(&acoplados).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch acoplados"})
			return
		}
		c.JSON(200, acoplados)
	}
}

func CreateAcoplado(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var acoplado models.Acoplado
		if err := c.ShouldBindJSON(&acoplado); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if acoplado.Dominio == "" {
			c.JSON(400, gin.H{"error": "dominio is required"})
			return
		}

		if err := db.Create(&acoplado).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create acoplado"})
			return
		}

		hub.NotifyCollectionChanged("acoplados")
		c.JSON(201, acoplado)
	}
}

func UpdateAcoplado(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		dominio := c.Param("dominio")

		var acoplado models.Acoplado
		if err := db.First(&acoplado, "dominio = ?", dominio).Error; err != nil {
			c.JSON(404, gin.H{"error": "Acoplado not found"})
			return
		}

		if err := c.ShouldBindJSON(&acoplado); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		acoplado.Dominio = dominio

		if err := db.Save(&acoplado).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update acoplado"})
			return
		}

		hub.NotifyCollectionChanged("acoplados")
		c.JSON(200, acoplado)
	}
}

func DeleteAcoplado(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var acoplado models.Acoplado
		if err := db.First(&acoplado, "dominio = ?", c.Param("dominio")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Acoplado not found"})
			return
		}

		if err := db.Delete(&acoplado).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete acoplado"})
			return
		}

		hub.NotifyCollectionChanged("acoplados")
		c.JSON(200, gin.H{"message": "Acoplado eliminado"})
	}
}
