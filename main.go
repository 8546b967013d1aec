package main

import (
	"fmt"
	"log"
	"os"

	"bizhub-backend/config"
	"bizhub-backend/models"
	"bizhub-backend/routes"
	"bizhub-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.StateRecord{},
		&models.ServiceRequest{},
		&models.RequestItem{},
		&models.Payment{},
		&models.Notification{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewCleanupService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
