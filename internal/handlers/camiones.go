package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/internal/services"
)

// GetCamiones returns every truck.
func GetCamiones(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var camiones []models.Camion
		if err := db.Find(&camiones).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch camiones"})
			return
		}
		c.JSON(200, camiones)
	}
}

// CreateCamion registers a new truck. The dominio in the payload becomes the
// primary key.
func CreateCamion(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var camion models.Camion
		if err := c.ShouldBindJSON(&camion); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if camion.Dominio == "" {
			c.JSON(400, gin.H{"error": "dominio is required"})
			return
		}

		if err := db.Create(&camion).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create camion"})
			return
		}

		hub.NotifyCollectionChanged("camiones")
		c.JSON(201, camion)
	}
}

// UpdateCamion applies the provided fields to the truck with the given plate.
func UpdateCamion(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		dominio := c.Param("dominio")

		var camion models.Camion
		if err := db.First(&camion, "dominio = ?", dominio).Error; err != nil {
			c.JSON(404, gin.H{"error": "Camion not found"})
			return
		}

		if err := c.ShouldBindJSON(&camion); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		camion.Dominio = dominio // the plate in the path wins

		if err := db.Save(&camion).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update camion"})
			return
		}

		hub.NotifyCollectionChanged("camiones")
		c.JSON(200, camion)
	}
}

// DeleteCamion removes a truck and its uploaded photo, if any.
func DeleteCamion(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var camion models.Camion
		if err := db.First(&camion, "dominio = ?", c.Param("dominio")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Camion not found"})
			return
		}

		if err := db.Delete(&camion).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete camion"})
			return
		}

		hub.NotifyCollectionChanged("camiones")

		if err := services.DeletePhoto(camion.Foto); err != nil {
			// The record is already gone; an orphaned photo is not worth a 500.
			c.JSON(200, gin.H{"message": "Camión eliminado", "warning": "photo cleanup failed"})
			return
		}
		c.JSON(200, gin.H{"message": "Camión eliminado"})
	}
}

// UploadCamionFoto stores a photo for the truck and saves its URL in the foto
// field, replacing any base64 payload the console previously stored there.
func UploadCamionFoto(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		dominio := c.Param("dominio")

		var camion models.Camion
		if err := db.First(&camion, "dominio = ?", dominio).Error; err != nil {
			c.JSON(404, gin.H{"error": "Camion not found"})
			return
		}

		file, err := c.FormFile("foto")
		if err != nil {
			c.JSON(400, gin.H{"error": "foto file is required"})
			return
		}

		url, err := services.UploadPhoto(file, dominio)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to store photo"})
			return
		}

		if err := db.Model(&camion).Update("foto", url).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update camion"})
			return
		}

		hub.NotifyCollectionChanged("camiones")
		c.JSON(200, gin.H{"foto": url})
	}
}
