package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// GetUserOrders lists the authenticated user's orders, newest first.
func GetUserOrders(c *gin.Context) {
	utils.LogInfo("GetUserOrders called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := repositories.ListOrdersForUser(config.DB, user.ID)
	if err != nil {
		utils.LogError("Failed to list orders for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}
	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": orders})
}

// GetAllOrders lists every order with pagination. Admin only.
func GetAllOrders(c *gin.Context) {
	utils.LogInfo("GetAllOrders called")

	pagination := utils.NewPagination(c)
	orders, err := repositories.ListAllOrders(config.DB, pagination)
	if err != nil {
		utils.LogError("Failed to list all orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}
	utils.Success(c, "Orders retrieved successfully", gin.H{
		"orders":     orders,
		"pagination": pagination,
	})
}

// DeleteOrderAdmin removes an order and its items. Admin only.
func DeleteOrderAdmin(c *gin.Context) {
	utils.LogInfo("DeleteOrderAdmin called")

	id, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	if err := repositories.DeleteOrder(config.DB, uint(id)); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Order %d deleted", id)
	utils.Success(c, "Order deleted successfully", nil)
}
