package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernhub/ecommerce-api/models"
)

func TestValidateVoucherFlagsValidity(t *testing.T) {
	db := setupTestDB(t)
	pct := 10.0
	code := "SAVE10"
	product := models.Product{Name: "Desk Lamp", Price: 100, DiscountPercentage: &pct, CouponCode: &code}
	require.NoError(t, db.Create(&product).Error)

	router := gin.New()
	router.POST("/products/validate-voucher", ValidateVoucher)

	w := performJSON(router, http.MethodPost, "/products/validate-voucher",
		gin.H{"product_id": product.ID, "code": "WRONG"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"is_valid":false`)
	assert.Contains(t, w.Body.String(), "Invalid or expired voucher code")

	w = performJSON(router, http.MethodPost, "/products/validate-voucher",
		gin.H{"product_id": product.ID, "code": code})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_valid":true`)
	assert.Contains(t, w.Body.String(), `"final_price":90`)
}
