package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/zahraaAed/Douluxme-Backend/auth"
	"github.com/zahraaAed/Douluxme-Backend/config"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"github.com/zahraaAed/Douluxme-Backend/routes"
)

func main() {
	log.Println("Starting Douluxme backend...")

	_ = godotenv.Load()
	config.Load()

	if err := auth.InitJWTSecret(config.App.JWTSecret); err != nil {
		log.Fatalf("JWT setup failed: %v", err)
	}

	config.InitRedis(config.App.RedisAddr)

	db, err := config.ConnectDatabase(config.App.Database)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Nut{},
		&models.Chocolate{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Feedback{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	r := gin.Default()

	// 32 MB is plenty for product and category images
	r.MaxMultipartMemory = 32 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", config.App.UploadDir)

	routes.SetupRoutes(r, db)

	log.Printf("Server running on port %s...", config.App.Port)
	if err := r.Run(":" + config.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
