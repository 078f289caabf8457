package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/opancha1/OnlineRestaurantOrderingSystem/controllers"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/repository"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/services"
	"github.com/opancha1/OnlineRestaurantOrderingSystem/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *ws.NotificationHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	userRepo := repository.NewUserRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	promoSvc := services.NewPromotionService(promoRepo)
	notifSvc := services.NewNotificationService(notifRepo, orderRepo, hub)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, userRepo, promoSvc, notifSvc)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, userRepo, notifSvc)
	menuSvc := services.NewMenuService(menuRepo)
	reviewSvc := services.NewReviewService(reviewRepo, menuRepo, orderRepo)
	userSvc := services.NewUserService(userRepo)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	promoCtrl := controllers.NewPromotionController(promoSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	userCtrl := controllers.NewUserController(userSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)

	// Orders (registered + guest checkout)
	o := r.Group("/orders")
	{
		o.POST("", orderCtrl.Create)
		o.POST("/guest", orderCtrl.CreateGuest)
		o.GET("", orderCtrl.List)
		o.GET("/track/:tracking_number", orderCtrl.Track)
		o.GET("/total/summary", orderCtrl.TotalSummary)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id", orderCtrl.Update)
		o.DELETE("/:id", orderCtrl.Delete)
	}

	// Payments
	p := r.Group("/payments")
	{
		p.POST("", paymentCtrl.Create)
		p.GET("/by-user", paymentCtrl.ByUser)
		p.GET("/:id", paymentCtrl.Detail)
		p.PUT("/:id", paymentCtrl.Update)
		p.DELETE("/:id", paymentCtrl.Delete)
	}

	// Menu
	m := r.Group("/menu-items")
	{
		m.POST("", menuCtrl.Create)
		m.GET("", menuCtrl.List)
		m.GET("/:id", menuCtrl.Detail)
		m.PUT("/:id", menuCtrl.Update)
		m.DELETE("/:id", menuCtrl.Delete)
	}

	// Promotions
	pr := r.Group("/promotions")
	{
		pr.POST("", promoCtrl.Create)
		pr.GET("", promoCtrl.List)
		pr.GET("/:id", promoCtrl.Detail)
		pr.PUT("/:id", promoCtrl.Update)
		pr.DELETE("/:id", promoCtrl.Delete)
	}

	// Notifications
	n := r.Group("/notifications")
	{
		n.POST("/test", notifCtrl.SendTest)
		n.GET("", notifCtrl.List)
		n.GET("/:id", notifCtrl.Detail)
	}

	// Reviews
	rv := r.Group("/reviews")
	{
		rv.POST("", reviewCtrl.Create)
		rv.GET("", reviewCtrl.List)
		rv.GET("/:id", reviewCtrl.Detail)
		rv.PUT("/:id", reviewCtrl.Update)
		rv.DELETE("/:id", reviewCtrl.Delete)
	}

	// Users
	u := r.Group("/users")
	{
		u.POST("", userCtrl.Create)
		u.GET("", userCtrl.List)
		u.GET("/:id", userCtrl.Detail)
		u.PUT("/:id", userCtrl.Update)
		u.DELETE("/:id", userCtrl.Delete)
	}

	// Analytics
	a := r.Group("/analytics")
	{
		a.GET("/sales-summary", analyticsCtrl.SalesSummary)
		a.GET("/popular-items", analyticsCtrl.PopularItems)
	}

	// Live notification feed
	r.GET("/ws/notifications", hub.Serve)
}
