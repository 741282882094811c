package repositories

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
)

func TestAddCartItemIncrementsExistingLine(t *testing.T) {
	db := newTestDB(t)
	product := models.Product{Name: "Desk Lamp", Price: 499}
	require.NoError(t, db.Create(&product).Error)

	require.NoError(t, AddCartItem(db, 1, product.ID, 1))
	require.NoError(t, AddCartItem(db, 1, product.ID, 2))

	view, err := GetCartView(db, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	product := models.Product{Name: "Desk Lamp", Price: 499}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, AddCartItem(db, 1, product.ID, 2))

	require.NoError(t, UpdateCartItem(db, 1, product.ID, 0))

	view, err := GetCartView(db, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestUpdateCartItemRejectsNegativeQuantity(t *testing.T) {
	db := newTestDB(t)
	product := models.Product{Name: "Desk Lamp", Price: 499}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, AddCartItem(db, 1, product.ID, 2))

	err := UpdateCartItem(db, 1, product.ID, -1)
	appErr := utils.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestGetCartViewSurvivesProductDeletion(t *testing.T) {
	db := newTestDB(t)
	product := models.Product{Name: "Desk Lamp", Price: 499}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, AddCartItem(db, 1, product.ID, 2))

	require.NoError(t, DeleteProduct(db, product.ID))

	view, err := GetCartView(db, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetCartViewDropsStaleLine(t *testing.T) {
	db := newTestDB(t)
	cart, err := GetOrCreateCart(db, 1)
	require.NoError(t, err)

	// A line referencing a product row that no longer exists.
	stale := models.CartItem{CartID: cart.ID, ProductID: 9999, Quantity: 1}
	require.NoError(t, db.Create(&stale).Error)

	view, err := GetCartView(db, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}
