package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// GetAllProducts lists the full catalog. Public.
func GetAllProducts(c *gin.Context) {
	utils.LogInfo("GetAllProducts called")

	products, err := repositories.ListProducts(config.DB, false)
	if err != nil {
		utils.LogError("Failed to list products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}
	utils.Success(c, "Products retrieved successfully", gin.H{"products": products})
}

// GetFeaturedProducts lists products flagged as featured. Public.
func GetFeaturedProducts(c *gin.Context) {
	utils.LogInfo("GetFeaturedProducts called")

	products, err := repositories.ListProducts(config.DB, true)
	if err != nil {
		utils.LogError("Failed to list featured products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", nil)
		return
	}
	utils.Success(c, "Featured products retrieved successfully", gin.H{"products": products})
}

// GetProductByID returns one product with images, sizes and rating summary. Public.
func GetProductByID(c *gin.Context) {
	utils.LogInfo("GetProductByID called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	detail, err := repositories.GetProductDetail(config.DB, uint(id))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.Success(c, "Product retrieved successfully", gin.H{"product": detail})
}
