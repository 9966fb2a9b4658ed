package main

import (
	"log"
	"os"

	"go-postgres-restopos/config"
	"go-postgres-restopos/middlewares"
	"go-postgres-restopos/models"
	"go-postgres-restopos/realtime"
	"go-postgres-restopos/routes"
	"go-postgres-restopos/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, pakai environment variable")
	}

	config.ConnectDB()

	err := config.DB.AutoMigrate(
		&models.Floor{},
		&models.Table{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.InventoryItem{},
		&models.Invoice{},
		&models.Reservation{},
		&models.User{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatal("Gagal migrasi database: ", err)
	}

	config.SeedInitialData()

	hub := realtime.NewHub()
	defer hub.Close()

	r := gin.Default()
	r.Use(middlewares.CORS())

	r.GET("/", func(c *gin.Context) {
		utils.Success(c, "RestoPOS API berjalan", gin.H{"status": "ok"})
	})

	routes.SetupRoutes(r, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server berjalan di port " + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Gagal menjalankan server: ", err)
	}
}
