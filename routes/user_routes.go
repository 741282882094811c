package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/controllers"
	"github.com/modernhub/ecommerce-api/middleware"
)

// initUserRoutes registers the public and customer-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Auth channels
	auth := router.Group("/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/login", controllers.LoginUser)
		auth.POST("/admin-login", controllers.AdminLogin)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
		auth.POST("/admin/forgot-password", controllers.AdminForgotPassword)
		auth.POST("/admin/reset-password", controllers.AdminResetPassword)

		auth.GET("/me", middleware.AuthMiddleware(), controllers.GetMe)
	}

	// Public catalog
	categories := router.Group("/categories")
	{
		categories.GET("", controllers.GetAllCategories)
		categories.GET("/products-with-categories", controllers.GetProductsWithCategories)
		categories.GET("/:id", controllers.GetCategory)
		categories.GET("/:id/products", controllers.GetCategoryProducts)
	}

	products := router.Group("/products")
	{
		products.GET("/all", controllers.GetAllProducts)
		products.GET("/featured", controllers.GetFeaturedProducts)
		products.GET("/:id", controllers.GetProductByID)
		products.POST("/validate-voucher", controllers.ValidateVoucher)

		// Public review reads
		products.GET("/:id/reviews", controllers.GetReviewsForProduct)
		products.GET("/:id/reviews/summary", controllers.GetReviewSummary)
		products.GET("/:id/reviews/:reviewId", controllers.GetReview)

		// Review writes
		products.POST("/:id/reviews", middleware.AuthMiddleware(), controllers.CreateReview)
		products.PUT("/reviews/:reviewId", middleware.AuthMiddleware(), controllers.UpdateReview)
	}

	// Votes accept anonymous callers, keyed by client IP
	votes := router.Group("/reviews", middleware.OptionalAuthMiddleware())
	{
		votes.POST("/:reviewId/vote", controllers.VoteOnReview)
		votes.DELETE("/:reviewId/vote", controllers.RemoveVoteOnReview)
		votes.GET("/:reviewId/votes", controllers.GetReviewVotes)
	}

	// Cart
	carts := router.Group("/carts", middleware.AuthMiddleware())
	{
		carts.GET("/my-cart", controllers.GetMyCart)
		carts.POST("/add", controllers.AddToCart)
		carts.POST("/update", controllers.UpdateCartItem)
		carts.POST("/remove", controllers.RemoveCartItem)
		carts.POST("/clear", controllers.ClearCart)
	}

	// Customer orders
	orders := router.Group("/orders", middleware.AuthMiddleware())
	{
		orders.POST("", controllers.CreateOrder)
		orders.POST("/:orderId/confirm", controllers.ConfirmPayment)
		orders.GET("/user", controllers.GetUserOrders)
		orders.GET("/:orderId/invoice", controllers.DownloadInvoice)
	}
}
