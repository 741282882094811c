package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernhub/ecommerce-api/models"
)

func TestCreateOrderDefaultsCountryToIndia(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "irrelevant", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Desk Lamp", Price: 100}
	require.NoError(t, db.Create(&product).Error)

	router := gin.New()
	router.POST("/orders", authAs(&user), CreateOrder)

	body := gin.H{
		"first_name":     "Asha",
		"email":          "asha@example.com",
		"phone":          "9876543210",
		"address":        "12 Hill Road",
		"city":           "Mumbai",
		"zip_code":       "400050",
		"payment_method": models.PaymentMethodCOD,
		"items":          []gin.H{{"product_id": product.ID, "quantity": 2}},
	}
	w := performJSON(router, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, "India", order.Country)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.EqualValues(t, 20000, order.Amount)
}
