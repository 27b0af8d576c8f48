package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/blslogistica/cargoflow/internal/models"
	"github.com/blslogistica/cargoflow/internal/reports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ViajesExcel streams the full trip list as a spreadsheet.
func ViajesExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var viajes []models.Viaje
		if err := db.Order("fecha_inicio DESC").Find(&viajes).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch viajes"})
			return
		}
		var choferes []models.Chofer
		if err := db.Find(&choferes).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch choferes"})
			return
		}

		f, err := reports.BuildViajesReport(viajes, choferes)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to build report"})
			return
		}
		sendXlsx(c, f, "viajes.xlsx")
	}
}

// GastosViajeExcel streams the expenses of one trip.
func GastosViajeExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var viaje models.Viaje
		if err := db.First(&viaje, c.Param("viajeId")).Error; err != nil {
			c.JSON(404, gin.H{"error": "Viaje not found"})
			return
		}

		var gastos []models.Gasto
		if err := db.Where("viaje_id = ?", viaje.ID).Order("fecha DESC").Find(&gastos).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch gastos"})
			return
		}
		var tipos []models.TipoDeGasto
		if err := db.Find(&tipos).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch tipos de gasto"})
			return
		}

		f, err := reports.BuildGastosViajeReport(viaje, gastos, tipos)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to build report"})
			return
		}
		sendXlsx(c, f, fmt.Sprintf("gastos-viaje-%d.xlsx", viaje.ID))
	}
}

// GastosPeriodoExcel streams the expenses dated inside the requested window.
func GastosPeriodoExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		desde, err := time.Parse("2006-01-02", c.Query("fecha_inicio"))
		if err != nil {
			c.JSON(400, gin.H{"error": "fecha_inicio must be YYYY-MM-DD"})
			return
		}
		hasta, err := time.Parse("2006-01-02", c.Query("fecha_fin"))
		if err != nil {
			c.JSON(400, gin.H{"error": "fecha_fin must be YYYY-MM-DD"})
			return
		}

		var gastos []models.Gasto
		if err := db.Order("fecha DESC").Find(&gastos).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch gastos"})
			return
		}
		var tipos []models.TipoDeGasto
		if err := db.Find(&tipos).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch tipos de gasto"})
			return
		}

		f, err := reports.BuildGastosPeriodoReport(desde, hasta, gastos, tipos)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to build report"})
			return
		}
		sendXlsx(c, f, "gastos-periodo.xlsx")
	}
}

func sendXlsx(c *gin.Context, f *excelize.File, filename string) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to write report"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, xlsxContentType, buf.Bytes())
}
