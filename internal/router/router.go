package router

import (
	"github.com/arefin/procurehub-backend/config"
	"github.com/arefin/procurehub-backend/internal/app/controller"
	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController         *controller.AuthController
	productController      *controller.ProductController
	companyController      *controller.CompanyController
	draftController        *controller.DraftController
	checkoutController     *controller.CheckoutController
	orderController        *controller.OrderController
	notificationController *controller.NotificationController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	companyController *controller.CompanyController,
	draftController *controller.DraftController,
	checkoutController *controller.CheckoutController,
	orderController *controller.OrderController,
	notificationController *controller.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		productController:      productController,
		companyController:      companyController,
		draftController:        draftController,
		checkoutController:     checkoutController,
		orderController:        orderController,
		notificationController: notificationController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "PROCUREHUB API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		products := v1.Group("/products")
		products.Use(r.authMiddleware.Authenticate())
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/:id", r.productController.GetProduct)
		}

		companies := v1.Group("/companies")
		companies.Use(r.authMiddleware.Authenticate())
		{
			companies.GET("", r.companyController.GetCompanies)
			companies.GET("/:id", r.companyController.GetCompany)
			companies.GET("/:id/employees", r.companyController.GetCompanyEmployees)
		}

		cart := v1.Group("/cart")
		cart.Use(r.authMiddleware.Authenticate())
		{
			cart.GET("", r.draftController.GetDraft)
			cart.DELETE("", r.draftController.ClearDraft)
			cart.POST("/items", r.draftController.AddItem)
			cart.PATCH("/items/:index", r.draftController.UpdateItem)
			cart.DELETE("/items/:index", r.draftController.RemoveItem)
			cart.PUT("/info", r.draftController.SetInfo)
		}

		orders := v1.Group("/orders")
		orders.Use(r.authMiddleware.Authenticate())
		{
			orders.GET("", r.orderController.GetOrders)
			orders.GET("/:id", r.orderController.GetOrder)
			orders.POST("/submit",
				r.authMiddleware.RequireRole(model.RoleAdmin, model.RoleSuperAdmin, model.RoleCompany),
				r.checkoutController.Submit,
			)
		}

		notifications := v1.Group("/notifications")
		notifications.Use(r.authMiddleware.Authenticate())
		{
			notifications.GET("", r.notificationController.GetNotifications)
			notifications.PATCH("/:id/read", r.notificationController.MarkRead)
		}

		v1.GET("/ws/notifications",
			r.authMiddleware.Authenticate(),
			r.notificationController.Subscribe,
		)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
