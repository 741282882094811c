package repositories

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
)

func TestDeleteCategoryBlockedWhileProductsRemain(t *testing.T) {
	db := newTestDB(t)
	category := models.Category{Name: "Lighting"}
	require.NoError(t, db.Create(&category).Error)
	for _, name := range []string{"Desk Lamp", "Floor Lamp"} {
		require.NoError(t, db.Create(&models.Product{Name: name, Price: 499, CategoryID: &category.ID}).Error)
	}

	err := DeleteCategory(db, category.ID)
	appErr := utils.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Message, "Cannot delete category 'Lighting' as it has 2 products")

	require.NoError(t, db.Where("category_id = ?", category.ID).Delete(&models.Product{}).Error)
	assert.NoError(t, DeleteCategory(db, category.ID))
}

func TestCategoryViewsCarryProductCounts(t *testing.T) {
	db := newTestDB(t)
	lighting := models.Category{Name: "Lighting"}
	decor := models.Category{Name: "Decor"}
	require.NoError(t, db.Create(&lighting).Error)
	require.NoError(t, db.Create(&decor).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Desk Lamp", Price: 499, CategoryID: &lighting.ID}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Floor Lamp", Price: 1299, CategoryID: &lighting.ID}).Error)

	views, err := ListCategoryViews(db)
	require.NoError(t, err)
	require.Len(t, views, 2)
	// Ordered by name, so Decor comes first.
	assert.Equal(t, "Decor", views[0].Name)
	assert.EqualValues(t, 0, views[0].ProductCount)
	assert.Equal(t, "Lighting", views[1].Name)
	assert.EqualValues(t, 2, views[1].ProductCount)

	view, err := GetCategoryView(db, lighting.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, view.ProductCount)

	_, err = GetCategoryView(db, 9999)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestListProductSummariesJoinsCategoryNames(t *testing.T) {
	db := newTestDB(t)
	category := models.Category{Name: "Lighting"}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Desk Lamp", Brand: "Lumen", Price: 499, CategoryID: &category.ID}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Loose Part", Price: 10}).Error)

	summaries, err := ListProductSummaries(db)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Desk Lamp", summaries[0].Name)
	assert.Equal(t, "Lighting", summaries[0].CategoryName)
}

func TestListProductsForCategory(t *testing.T) {
	db := newTestDB(t)
	category := models.Category{Name: "Lighting"}
	other := models.Category{Name: "Decor"}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Desk Lamp", Price: 499, CategoryID: &category.ID}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Vase", Price: 199, CategoryID: &other.ID}).Error)

	products, err := ListProductsForCategory(db, category.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Desk Lamp", products[0].Name)
}
