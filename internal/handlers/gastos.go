package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/internal/services"
)

// GetGastos returns every expense, newest first.
func GetGastos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gastos []models.Gasto
		if err := db.Order("fecha DESC").Find(&gastos).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch gastos"})
			return
		}
		c.JSON(200, gastos)
	}
}

func CreateGasto(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gasto models.Gasto
		if err := c.ShouldBindJSON(&gasto); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Create(&gasto).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create gasto"})
			return
		}

		hub.NotifyCollectionChanged("gastos")
		c.JSON(201, gasto)
	}
}

func UpdateGasto(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gasto models.Gasto
		if err := db.First(&gasto, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Gasto not found"})
			return
		}

		id := gasto.ID
		if err := c.ShouldBindJSON(&gasto); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		gasto.ID = id

		if err := db.Save(&gasto).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update gasto"})
			return
		}

		hub.NotifyCollectionChanged("gastos")
		c.JSON(200, gasto)
	}
}

func DeleteGasto(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gasto models.Gasto
		if err := db.First(&gasto, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Gasto not found"})
			return
		}

		if err := db.Delete(&gasto).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete gasto"})
			return
		}

		hub.NotifyCollectionChanged("gastos")
		c.JSON(200, gin.H{"message": "Gasto eliminado"})
	}
}

// GetTiposDeGasto returns expense categories ordered by name.
func GetTiposDeGasto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tipos []models.TipoDeGasto
		if err := db.Order("nombre").Find(&tipos).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch tipos de gasto"})
			return
		}
		c.JSON(200, tipos)
	}
}

// CreateTipoDeGasto adds an expense category. The console guards against
// case-insensitive duplicates; the unique index is the backstop here.
func CreateTipoDeGasto(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tipo models.TipoDeGasto
		if err := c.ShouldBindJSON(&tipo); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if err := db.Create(&tipo).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create tipo de gasto"})
			return
		}

		hub.NotifyCollectionChanged("tiposDeGasto")
		c.JSON(201, tipo)
	}
}

func DeleteTipoDeGasto(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tipo models.TipoDeGasto
		if err := db.First(&tipo, c.Param("id")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Tipo de gasto not found"})
			return
		}

		if err := db.Delete(&tipo).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete tipo de gasto"})
			return
		}

		hub.NotifyCollectionChanged("tiposDeGasto")
		c.JSON(200, gin.H{"message": "Tipo de gasto eliminado"})
	}
}
