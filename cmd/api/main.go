package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/blslogistica/cargoflow/internal/database"
	"github.com/blslogistica/cargoflow/internal/handlers"
	"github.com/blslogistica/cargoflow/internal/middleware"
	"github.com/blslogistica/cargoflow/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment as-is")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Redis is optional: without it the lookup endpoints hit Postgres directly.
	if err := services.InitRedis(); err != nil {
		log.Printf("Redis initialization warning: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	if services.UsingS3() {
		log.Printf("Photo storage: S3")
	} else {
		log.Printf("Photo storage: local (%s)", services.UploadDir())
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Locally stored vehicle photos
	if dir := services.UploadDir(); dir != "" {
		r.Static("/uploads", dir)
	}

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health(hub))

		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(db))
			auth.POST("/login", handlers.Login(db))
		}

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			choferes := protected.Group("/choferes")
			{
				choferes.GET("", handlers.GetChoferes(db))
				choferes.POST("", handlers.CreateChofer(db, hub))
				choferes.PUT("/:id", handlers.UpdateChofer(db, hub))
				choferes.DELETE("/:id", handlers.DeleteChofer(db, hub))
			}

			camiones := protected.Group("/camiones")
			{
				camiones.GET("", handlers.GetCamiones(db))
				camiones.POST("", handlers.CreateCamion(db, hub))
				camiones.PUT("/:dominio", handlers.UpdateCamion(db, hub))
				camiones.DELETE("/:dominio", handlers.DeleteCamion(db, hub))
				camiones.POST("/:dominio/foto", handlers.UploadCamionFoto(db, hub))
			}

			acoplados := protected.Group("/acoplados")
			{
				acoplados.GET("", handlers.GetAcoplados(db))
				acoplados.POST("", handlers.CreateAcoplado(db, hub))
				acoplados.PUT("/:dominio", handlers.UpdateAcoplado(db, hub))
				acoplados.DELETE("/:dominio", handlers.DeleteAcoplado(db, hub))
			}

			viajes := protected.Group("/viajes")
			{
				viajes.GET("", handlers.GetViajes(db))
				viajes.POST("", handlers.CreateViaje(db, hub))
				viajes.PUT("/:id", handlers.UpdateViaje(db, hub))
				viajes.DELETE("/:id", handlers.DeleteViaje(db, hub))
			}

			polizas := protected.Group("/polizas")
			{
				polizas.GET("", handlers.GetPolizas(db))
				polizas.POST("", handlers.CreatePoliza(db, hub))
				polizas.PUT("/:id", handlers.UpdatePoliza(db, hub))
				polizas.DELETE("/:id", handlers.DeletePoliza(db, hub))
			}

			gastos := protected.Group("/gastos")
			{
				gastos.GET("", handlers.GetGastos(db))
				gastos.POST("", handlers.CreateGasto(db, hub))
				gastos.PUT("/:id", handlers.UpdateGasto(db, hub))
				gastos.DELETE("/:id", handlers.DeleteGasto(db, hub))
			}

			tipos := protected.Group("/tiposDeGasto")
			{
				tipos.GET("", handlers.GetTiposDeGasto(db))
				tipos.POST("", handlers.CreateTipoDeGasto(db, hub))
				tipos.DELETE("/:id", handlers.DeleteTipoDeGasto(db, hub))
			}

			// Read-only lookups
			protected.GET("/currencies", handlers.GetCurrencies(db))
			protected.GET("/vehiculoEstados", handlers.GetVehiculoEstados(db))
			protected.GET("/viajeEstados", handlers.GetViajeEstados(db))

			// Spreadsheet reports
			informes := protected.Group("/informes")
			{
				informes.GET("/viajes-excel", handlers.ViajesExcel(db))
				informes.GET("/gastos-viaje-excel/:viajeId", handlers.GastosViajeExcel(db))
				informes.GET("/gastos-periodo-excel", handlers.GastosPeriodoExcel(db))
			}

			// Development reset
			protected.POST("/reset", handlers.ResetDatabase(db, hub))
			protected.GET("/reset/status", handlers.GetResetStatus())
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
