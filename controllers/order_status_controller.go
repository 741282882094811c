package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// UpdateOrderStatusRequest carries the new status value.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus sets an order's status to any value in the
// allow-list. Admin only.
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !models.IsValidOrderStatus(req.Status) {
		utils.BadRequest(c, "Invalid order status", gin.H{
			"status":         req.Status,
			"valid_statuses": models.ValidOrderStatuses,
		})
		return
	}

	order, err := repositories.FindOrderByID(config.DB, uint(orderID))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	if err := config.DB.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update status for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order status", nil)
		return
	}

	utils.LogInfo("Order %d status set to %s", order.ID, req.Status)
	utils.Success(c, "Order status updated successfully", gin.H{
		"order_id": order.ID,
		"status":   req.Status,
	})
}
