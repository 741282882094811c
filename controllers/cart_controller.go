package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// CartItemRequest carries the product and quantity for cart mutations.
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GetMyCart returns the authenticated user's cart with line totals.
func GetMyCart(c *gin.Context) {
	utils.LogInfo("GetMyCart called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := repositories.GetCartView(config.DB, user.ID)
	if err != nil {
		utils.LogError("Failed to load cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}
	utils.Success(c, "Cart retrieved successfully", gin.H{"cart": cart})
}

// AddToCart adds a product to the cart, incrementing any existing line.
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := repositories.AddCartItem(config.DB, user.ID, req.ProductID, req.Quantity); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	cart, err := repositories.GetCartView(config.DB, user.ID)
	if err != nil {
		utils.LogError("Failed to reload cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	utils.LogInfo("User %d added product %d to cart", user.ID, req.ProductID)
	utils.Success(c, "Item added to cart", gin.H{"cart": cart})
}

// UpdateCartItem sets the quantity of a cart line. Zero removes the line.
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := repositories.UpdateCartItem(config.DB, user.ID, req.ProductID, req.Quantity); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	cart, err := repositories.GetCartView(config.DB, user.ID)
	if err != nil {
		utils.LogError("Failed to reload cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	utils.LogInfo("User %d set product %d quantity to %d", user.ID, req.ProductID, req.Quantity)
	utils.Success(c, "Cart updated", gin.H{"cart": cart})
}

// RemoveCartItem deletes one line from the cart.
func RemoveCartItem(c *gin.Context) {
	utils.LogInfo("RemoveCartItem called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := repositories.RemoveCartItem(config.DB, user.ID, req.ProductID); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("User %d removed product %d from cart", user.ID, req.ProductID)
	utils.Success(c, "Item removed from cart", nil)
}

// ClearCart empties the authenticated user's cart.
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	if err := repositories.ClearCart(config.DB, user.ID); err != nil {
		utils.LogError("Failed to clear cart for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}

	utils.LogInfo("User %d cleared cart", user.ID)
	utils.Success(c, "Cart cleared", nil)
}
