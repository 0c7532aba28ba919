package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"ohio-order/config"
	"ohio-order/middleware"
	"ohio-order/models"
	"ohio-order/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.FromEnv()
		config.AppConfig = cfg
		config.ConnectDB()
		models.InitRedis(cfg.RedisURL, cfg.RedisAddr, cfg.RedisPassword)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		if err := routes.SetupRoutes(router, cfg); err != nil {
			log.Fatalf("Failed to set up routes: %v", err)
		}
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
