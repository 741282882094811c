package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// VoucherRequest pairs a product with the coupon code to validate.
type VoucherRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Code      string `json:"code" binding:"required"`
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// VoucherDiscount computes the discount and final price for a
// percentage voucher applied to a unit price.
func VoucherDiscount(price, percentage float64) (discount, final float64) {
	discount = roundMoney(price * percentage / 100)
	final = roundMoney(price - discount)
	return discount, final
}

// ValidateVoucher checks a product coupon code and returns the
// discounted pricing. Public.
func ValidateVoucher(c *gin.Context) {
	utils.LogInfo("ValidateVoucher called")

	var req VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	product, err := repositories.FindProductByVoucher(config.DB, req.ProductID, req.Code)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogInfo("Voucher %s rejected for product %d", req.Code, req.ProductID)
			c.JSON(http.StatusNotFound, utils.StandardResponse{
				Status:  "error",
				Message: "Invalid or expired voucher code",
				Data:    gin.H{"is_valid": false},
			})
			return
		}
		utils.RespondWithError(c, err)
		return
	}

	var percentage float64
	if product.DiscountPercentage != nil {
		percentage = *product.DiscountPercentage
	}
	discount, final := VoucherDiscount(product.Price, percentage)

	utils.LogInfo("Voucher %s validated for product %d", req.Code, product.ID)
	utils.Success(c, "Voucher applied successfully", gin.H{
		"is_valid":            true,
		"product_id":          product.ID,
		"code":                req.Code,
		"discount_percentage": percentage,
		"original_price":      roundMoney(product.Price),
		"discount_amount":     discount,
		"final_price":         final,
	})
}
