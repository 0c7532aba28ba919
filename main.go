package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"ohio-order/config"
	_ "ohio-order/docs"
	"ohio-order/middleware"
	"ohio-order/models"
	"ohio-order/routes"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	models.InitRedis(config.AppConfig.RedisURL, config.AppConfig.RedisAddr, config.AppConfig.RedisPassword)
	defer models.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	if err := routes.SetupRoutes(router, config.AppConfig); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
