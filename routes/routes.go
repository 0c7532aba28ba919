package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ohio-order/config"
	"ohio-order/controllers"
	"ohio-order/handler"
	"ohio-order/middleware"
	"ohio-order/models"
	"ohio-order/repositories"
	"ohio-order/services"
	"ohio-order/views"
)

func SetupRoutes(router *gin.Engine, cfg *config.Config) error {
	tmpl, err := views.Load()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	client := repositories.NewAPIClient(cfg.OrderAPIURL, cfg.RequestTimeout)
	activityRepo := repositories.NewActivityRepository(config.DB)

	var drafts services.DraftStore = services.NewMemoryDraftStore()
	if models.RedisClient != nil {
		drafts = services.NewRedisDraftStore(models.RedisClient, cfg.DraftTTL)
	}

	guard := services.NewActionGuard()
	sessionSvc := services.NewSessionService(repositories.NewMejaRepository(client), drafts)
	checkoutSvc := services.NewCheckoutService(repositories.NewCheckoutRepository(client), guard, activityRepo)
	orderSvc := services.NewOrderService(repositories.NewOrderRepository(client), checkoutSvc, drafts, guard, activityRepo)

	sessionCtrl := controllers.NewSessionController(sessionSvc, controllers.CookieConfig{
		Name:   cfg.SessionCookie,
		Secret: cfg.SessionSecret,
		Expiry: cfg.SessionExpiry,
		Secure: cfg.IsProduction(),
	})
	pesananCtrl := controllers.NewPesananController(orderSvc, checkoutSvc)
	orderAPICtrl := controllers.NewOrderAPIController(orderSvc, activityRepo)

	router.Use(middleware.SessionMiddleware(cfg.SessionCookie, cfg.SessionSecret))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handler.Health)

	router.GET("/", func(c *gin.Context) { c.Redirect(303, "/login") })
	router.GET("/login", sessionCtrl.ShowLogin)
	router.POST("/login", sessionCtrl.Login)
	router.POST("/logout", sessionCtrl.Logout)

	pages := router.Group("/")
	pages.Use(middleware.RequirePageSession("/login"))
	{
		pages.GET("/menu", pesananCtrl.ShowMenu)
		pages.GET("/checkout", pesananCtrl.ShowCheckout)

		pages.GET("/pesanan", pesananCtrl.Show)
		pages.POST("/pesanan/save", pesananCtrl.Save)
		pages.POST("/pesanan/items/:id/increase", pesananCtrl.Increase)
		pages.POST("/pesanan/items/:id/decrease", pesananCtrl.Decrease)
		pages.POST("/pesanan/items/:id/delete", pesananCtrl.RequestDelete)
		pages.POST("/pesanan/delete/confirm", pesananCtrl.ConfirmDelete)
		pages.POST("/pesanan/delete/cancel", pesananCtrl.CancelDelete)
		pages.POST("/pesanan/checkout", pesananCtrl.OpenCheckout)
		pages.POST("/pesanan/checkout/confirm", pesananCtrl.ConfirmCheckout)
		pages.POST("/pesanan/checkout/cancel", pesananCtrl.CancelCheckout)
	}

	router.POST("/api/v1/session", sessionCtrl.APILogin)

	api := router.Group("/api/v1/pesanan")
	api.Use(middleware.RequireAPISession())
	{
		api.GET("", orderAPICtrl.GetPesanan)
		api.GET("/activity", orderAPICtrl.Activity)
		api.POST("/save", orderAPICtrl.Save)
		api.POST("/checkout", orderAPICtrl.Checkout)
		api.POST("/items/:id/increase", orderAPICtrl.Increase)
		api.POST("/items/:id/decrease", orderAPICtrl.Decrease)
		api.DELETE("/items/:id", orderAPICtrl.RemoveItem)
	}

	return nil
}
