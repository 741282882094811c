package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernhub/ecommerce-api/models"
)

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "irrelevant", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Desk Lamp", Price: 499}
	require.NoError(t, db.Create(&product).Error)
	order := models.Order{
		UserID: user.ID,
		Status: models.OrderStatusDelivered,
		OrderItems: []models.OrderItem{
			{ProductID: product.ID, Quantity: 1, Price: product.Price},
		},
	}
	require.NoError(t, db.Create(&order).Error)

	router := gin.New()
	router.POST("/products/:id/reviews", authAs(&user), CreateReview)

	path := "/products/1/reviews"
	body := gin.H{"rating": 5, "comment": "Bright and sturdy"}
	w := performJSON(router, http.MethodPost, path, body)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(router, http.MethodPost, path, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You have already reviewed this product")
}

func TestCreateReviewRequiresPurchase(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "irrelevant", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Desk Lamp", Price: 499}
	require.NoError(t, db.Create(&product).Error)

	router := gin.New()
	router.POST("/products/:id/reviews", authAs(&user), CreateReview)

	w := performJSON(router, http.MethodPost, "/products/1/reviews", gin.H{"rating": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You can only review products you have ordered")
}
