package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

func parseCategoryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return 0, false
	}
	return uint(id), true
}

// GetAllCategories lists every category with its product count. Public.
func GetAllCategories(c *gin.Context) {
	utils.LogInfo("GetAllCategories called")

	views, err := repositories.ListCategoryViews(config.DB)
	if err != nil {
		utils.LogError("Failed to list categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", nil)
		return
	}

	utils.LogInfo("Retrieved %d categories", len(views))
	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": views})
}

// GetCategory returns one category with its product count. Public.
func GetCategory(c *gin.Context) {
	utils.LogInfo("GetCategory called")

	id, ok := parseCategoryID(c)
	if !ok {
		return
	}

	view, err := repositories.GetCategoryView(config.DB, id)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.Success(c, "Category retrieved successfully", gin.H{"category": view})
}

// GetCategoryProducts lists every product in a category. Public.
func GetCategoryProducts(c *gin.Context) {
	utils.LogInfo("GetCategoryProducts called")

	id, ok := parseCategoryID(c)
	if !ok {
		return
	}

	category, err := repositories.FindCategoryByID(config.DB, id)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	products, err := repositories.ListProductsForCategory(config.DB, id)
	if err != nil {
		utils.LogError("Failed to list products for category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch category products", nil)
		return
	}

	utils.LogInfo("Retrieved %d products for category %s", len(products), category.Name)
	utils.Success(c, "Category products retrieved successfully", gin.H{
		"category":      categoryResponse(*category),
		"products":      products,
		"product_count": len(products),
	})
}

// GetProductsWithCategories lists every categorized product joined with its
// category name. Public.
func GetProductsWithCategories(c *gin.Context) {
	utils.LogInfo("GetProductsWithCategories called")

	summaries, err := repositories.ListProductSummaries(config.DB)
	if err != nil {
		utils.LogError("Failed to list products with categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch products with categories", nil)
		return
	}

	utils.LogInfo("Retrieved %d products with category information", len(summaries))
	utils.Success(c, "Products retrieved successfully", gin.H{"products": summaries})
}
