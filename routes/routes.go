package routes

import (
	"os"
	"strings"

	"bizhub-backend/config"
	"bizhub-backend/controllers"
	"bizhub-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
		auth.GET("/validate-reset-token", controllers.ValidateResetToken)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes
		api.GET("/catalog", controllers.GetCategories)
		api.GET("/catalog/:category", controllers.GetCatalog)

		// Cart routes, one cart per service category
		carts := api.Group("/cart/:category")
		{
			carts.GET("", controllers.GetCart)
			carts.POST("/toggle", controllers.ToggleSelection)
			carts.PUT("/quantity", controllers.UpdateQuantity)
			carts.PUT("/price", controllers.UpdateCustomPrice)
			carts.DELETE("/items/:serviceId", controllers.RemoveCartItem)
			carts.DELETE("", controllers.ClearCart)
			carts.POST("/finalize", controllers.FinalizeCart)
		}

		// Service request routes
		requests := api.Group("/requests")
		{
			requests.GET("/pending", controllers.ConsumePendingRequest)
			requests.POST("", controllers.SubmitRequest)
			requests.GET("", controllers.GetRequests)
			requests.GET("/:id", controllers.GetRequest)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.GET("/staged", controllers.GetStagedPayment)
			payments.POST("", controllers.CreatePayment)
			payments.GET("", controllers.GetPayments)
		}

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
			profile.PUT("/notifications", controllers.UpdateNotificationSettings)
		}

		// Admin routes
		admin := api.Group("/admin", utils.AdminMiddleware())
		{
			admin.GET("/stats", controllers.GetDashboardStats)
			admin.GET("/activities", controllers.GetRecentActivities)
			admin.GET("/revenue", controllers.GetRevenueSeries)
			admin.GET("/user-growth", controllers.GetUserGrowthSeries)
			admin.GET("/users", controllers.GetUsers)
			admin.POST("/users/:id/reset-password", controllers.AdminResetPassword)
		}
	}

	notifications := r.Group("/notifications")
	notifications.Use(utils.AuthMiddleware())
	{
		notifications.GET("", controllers.GetNotifications)
		notifications.PATCH("/:id/read", controllers.MarkNotificationRead)
		notifications.PATCH("/read-all", controllers.MarkAllNotificationsRead)
		notifications.DELETE("/:id", controllers.DeleteNotification)
	}

	return r
}
