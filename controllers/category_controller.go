package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// CategoryRequest carries the category name for create and update.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func categoryResponse(category models.Category) gin.H {
	return gin.H{
		"id":   category.ID,
		"name": category.Name,
	}
}

// CreateCategory adds a category. Admin only.
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	category := models.Category{Name: req.Name}
	if err := repositories.CreateCategory(config.DB, &category); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Category created: %s", category.Name)
	utils.Created(c, "Category created successfully", gin.H{"category": categoryResponse(category)})
}

// UpdateCategory renames a category. Admin only.
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	category, err := repositories.UpdateCategory(config.DB, uint(id), req.Name)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Category %d renamed to %s", category.ID, category.Name)
	utils.Success(c, "Category updated successfully", gin.H{"category": categoryResponse(*category)})
}

// DeleteCategory removes a category if no products reference it. Admin only.
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	if err := repositories.DeleteCategory(config.DB, uint(id)); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Category %d deleted", id)
	utils.Success(c, "Category deleted successfully", nil)
}
