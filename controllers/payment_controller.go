package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// ConfirmPaymentRequest carries the gateway callback values the client
// receives after checkout completes.
type ConfirmPaymentRequest struct {
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// ConfirmPayment verifies the gateway signature for an online order and
// marks it paid, or marks it failed on a signature mismatch.
func ConfirmPayment(c *gin.Context) {
	utils.LogInfo("ConfirmPayment called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	order, err := repositories.FindOrderForUser(config.DB, uint(orderID), user.ID)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	if order.PaymentMethod != models.PaymentMethodOnline {
		utils.BadRequest(c, "Payment confirmation only applies to online orders", nil)
		return
	}
	if order.RazorpayOrderID == "" {
		utils.BadRequest(c, "Order has no pending gateway payment", nil)
		return
	}

	if !getPaymentGateway().VerifySignature(order.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		if err := config.DB.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.OrderStatusPaymentFailed).Error; err != nil {
			utils.LogError("Failed to mark order %d as payment failed: %v", order.ID, err)
		}
		utils.LogInfo("Signature mismatch for order %d", order.ID)
		utils.BadRequest(c, "Payment verification failed", gin.H{"status": models.OrderStatusPaymentFailed})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"status":            models.OrderStatusPaymentPaid,
			"payment_id":        req.RazorpayPaymentID,
			"payment_signature": req.RazorpaySignature,
		}).Error
	})
	if err != nil {
		utils.LogError("Failed to mark order %d as paid: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to confirm payment", nil)
		return
	}

	utils.LogInfo("Payment confirmed for order %d", order.ID)
	utils.Success(c, "Payment confirmed successfully", gin.H{
		"order_id": order.ID,
		"status":   models.OrderStatusPaymentPaid,
	})
}
