package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/controllers"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/models"
)

// initAdminRoutes registers the Admin and SuperAdmin management routes
func initAdminRoutes(router *gin.RouterGroup) {
	adminOnly := []gin.HandlerFunc{
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin),
	}
	superAdminOnly := []gin.HandlerFunc{
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleSuperAdmin),
	}

	// Account provisioning
	auth := router.Group("/auth", superAdminOnly...)
	{
		auth.POST("/register-admin", controllers.RegisterAdmin)
		auth.POST("/register-superadmin", controllers.RegisterSuperAdmin)
	}

	// User management
	users := router.Group("/users")
	{
		users.GET("/all", append(adminOnly, controllers.GetAllUsers)...)
		users.GET("/user/:id", append(adminOnly, controllers.GetUser)...)
		users.PUT("/user/:id/update", append(superAdminOnly, controllers.UpdateUser)...)
		users.DELETE("/user/:id/delete", append(superAdminOnly, controllers.DeleteUser)...)
	}

	// Category management
	categories := router.Group("/categories", adminOnly...)
	{
		categories.POST("/add", controllers.CreateCategory)
		categories.PUT("/:id/update", controllers.UpdateCategory)
		categories.DELETE("/:id/delete", controllers.DeleteCategory)
	}

	// Product and review management
	products := router.Group("/products", adminOnly...)
	{
		products.POST("/add", controllers.AddProduct)
		products.PUT("/:id/update", controllers.UpdateProduct)
		products.DELETE("/:id/delete", controllers.DeleteProduct)
		products.GET("/reviews/all", controllers.GetAllReviews)
		products.DELETE("/reviews/:reviewId", controllers.AdminDeleteReview)
	}

	// Order management
	orders := router.Group("/orders")
	{
		orders.GET("", append(adminOnly, controllers.GetAllOrders)...)
		orders.GET("/export", append(adminOnly, controllers.ExportOrdersExcel)...)
		orders.POST("/:orderId/status", append(adminOnly, controllers.UpdateOrderStatus)...)
		orders.DELETE("/:orderId", append(superAdminOnly, controllers.DeleteOrderAdmin)...)
	}

	// Vote moderation
	votes := router.Group("/admin/votes")
	{
		votes.GET("", append(adminOnly, controllers.GetAllVotes)...)
		votes.DELETE("", append(superAdminOnly, controllers.DeleteAllVotes)...)
		votes.DELETE("/review/:reviewId", append(adminOnly, controllers.DeleteVotesByReview)...)
		votes.DELETE("/product/:productId", append(adminOnly, controllers.DeleteVotesByProduct)...)
	}
}
