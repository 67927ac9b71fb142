package routes

import (
	"github.com/bhagatankit05/Restuarant-App/configs"
	"github.com/bhagatankit05/Restuarant-App/controllers"
	"github.com/bhagatankit05/Restuarant-App/middlewares"
	"github.com/bhagatankit05/Restuarant-App/repository"
	"github.com/bhagatankit05/Restuarant-App/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, services.NewMenuCache(cfg.RedisAddr))
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo,
		services.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID))

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Menu (reads public, writes behind auth)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Get)
	m := r.Group("/menu", auth)
	{
		m.POST("", menuCtrl.Create)
		m.PUT("/:id", menuCtrl.Update)
		m.DELETE("/:id", menuCtrl.Delete)
	}

	// Orders
	o := r.Group("/orders", auth)
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.List)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id/status", orderCtrl.UpdateStatus)
		o.PUT("/:id/items/:itemId", orderCtrl.UpdateItem)
		o.DELETE("/:id/items/:itemId", orderCtrl.RemoveItem)
		o.DELETE("/:id", orderCtrl.Delete)
	}
}
