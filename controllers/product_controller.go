package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// productForm reads the multipart fields shared by create and update.
type productForm struct {
	Name               string
	Brand              string
	Description        string
	Price              float64
	CategoryID         *uint
	IsFeatured         bool
	DiscountPercentage *float64
	CouponCode         *string
	Sizes              []string
}

func parseProductForm(c *gin.Context, requirePrice bool) (*productForm, bool) {
	form := &productForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Brand:       strings.TrimSpace(c.PostForm("brand")),
		Description: c.PostForm("description"),
	}

	if raw := c.PostForm("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			utils.BadRequest(c, "Invalid price", nil)
			return nil, false
		}
		form.Price = price
	} else if requirePrice {
		utils.BadRequest(c, "Price is required", nil)
		return nil, false
	}

	if raw := c.PostForm("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.BadRequest(c, "Invalid category ID", nil)
			return nil, false
		}
		categoryID := uint(id)
		form.CategoryID = &categoryID
	}

	if raw := c.PostForm("is_featured"); raw != "" {
		form.IsFeatured = raw == "true" || raw == "1"
	}

	if raw := c.PostForm("discount_percentage"); raw != "" {
		pct, err := strconv.ParseFloat(raw, 64)
		if err != nil || pct < 0 || pct > 100 {
			utils.BadRequest(c, "Discount percentage must be between 0 and 100", nil)
			return nil, false
		}
		form.DiscountPercentage = &pct
	}

	if raw := strings.TrimSpace(c.PostForm("coupon_code")); raw != "" {
		form.CouponCode = &raw
	}

	for _, size := range c.PostFormArray("sizes") {
		size = strings.TrimSpace(size)
		if size != "" {
			form.Sizes = append(form.Sizes, size)
		}
	}

	return form, true
}

// uploadFormImages stores each uploaded file and returns the public URLs.
func uploadFormImages(c *gin.Context) ([]string, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, true
	}

	files := form.File["images"]
	urls := make([]string, 0, len(files))
	for _, file := range files {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.BadRequest(c, err.Error(), gin.H{"file": file.Filename})
			return nil, false
		}
		url, err := utils.UploadProductImage(c.Request.Context(), file)
		if err != nil {
			utils.LogError("Failed to upload image %s: %v", file.Filename, err)
			utils.InternalServerError(c, "Failed to upload image", nil)
			return nil, false
		}
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls, true
}

func resolveCategory(c *gin.Context, categoryID *uint) bool {
	if categoryID == nil {
		return true
	}
	if _, err := repositories.FindCategoryByID(config.DB, *categoryID); err != nil {
		utils.RespondWithError(c, err)
		return false
	}
	return true
}

// AddProduct creates a product from a multipart form. Admin only.
func AddProduct(c *gin.Context) {
	utils.LogInfo("AddProduct called")

	form, ok := parseProductForm(c, true)
	if !ok {
		return
	}
	if form.Name == "" {
		utils.BadRequest(c, "Product name is required", nil)
		return
	}
	if !resolveCategory(c, form.CategoryID) {
		return
	}

	urls, ok := uploadFormImages(c)
	if !ok {
		return
	}

	product := models.Product{
		Name:               form.Name,
		Brand:              form.Brand,
		Description:        form.Description,
		Price:              form.Price,
		CategoryID:         form.CategoryID,
		IsFeatured:         form.IsFeatured,
		DiscountPercentage: form.DiscountPercentage,
		CouponCode:         form.CouponCode,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	if len(urls) > 0 {
		if err := repositories.ReplaceProductImages(config.DB, product.ID, urls); err != nil {
			utils.LogError("Failed to attach images to product %d: %v", product.ID, err)
			utils.InternalServerError(c, "Failed to save product images", nil)
			return
		}
	}
	if len(form.Sizes) > 0 {
		if err := repositories.ReplaceProductSizes(config.DB, product.ID, form.Sizes); err != nil {
			utils.LogError("Failed to attach sizes to product %d: %v", product.ID, err)
			utils.InternalServerError(c, "Failed to save product sizes", nil)
			return
		}
	}

	detail, err := repositories.GetProductDetail(config.DB, product.ID)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Product created: %s (%d)", product.Name, product.ID)
	utils.Created(c, "Product created successfully", gin.H{"product": detail})
}

// UpdateProduct edits a product from a multipart form. Admin only.
// New images and sizes replace the existing sets when provided.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	product, err := repositories.FindProductByID(config.DB, uint(id))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	form, ok := parseProductForm(c, false)
	if !ok {
		return
	}
	if !resolveCategory(c, form.CategoryID) {
		return
	}

	urls, ok := uploadFormImages(c)
	if !ok {
		return
	}

	if form.Name != "" {
		product.Name = form.Name
	}
	if form.Brand != "" {
		product.Brand = form.Brand
	}
	if form.Description != "" {
		product.Description = form.Description
	}
	if c.PostForm("price") != "" {
		product.Price = form.Price
	}
	if form.CategoryID != nil {
		product.CategoryID = form.CategoryID
	}
	if c.PostForm("is_featured") != "" {
		product.IsFeatured = form.IsFeatured
	}
	if form.DiscountPercentage != nil {
		product.DiscountPercentage = form.DiscountPercentage
	}
	if form.CouponCode != nil {
		product.CouponCode = form.CouponCode
	}

	if err := config.DB.Save(product).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	if len(urls) > 0 {
		if err := repositories.ReplaceProductImages(config.DB, product.ID, urls); err != nil {
			utils.LogError("Failed to replace images for product %d: %v", product.ID, err)
			utils.InternalServerError(c, "Failed to save product images", nil)
			return
		}
	}
	if len(form.Sizes) > 0 {
		if err := repositories.ReplaceProductSizes(config.DB, product.ID, form.Sizes); err != nil {
			utils.LogError("Failed to replace sizes for product %d: %v", product.ID, err)
			utils.InternalServerError(c, "Failed to save product sizes", nil)
			return
		}
	}

	detail, err := repositories.GetProductDetail(config.DB, product.ID)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Product %d updated", product.ID)
	utils.Success(c, "Product updated successfully", gin.H{"product": detail})
}

// DeleteProduct removes a product and its images, sizes, reviews and votes. Admin only.
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var imageURLs []string
	if err := config.DB.Model(&models.ProductImage{}).Where("product_id = ?", id).
		Pluck("url", &imageURLs).Error; err != nil {
		utils.LogError("Failed to list images for product %d: %v", id, err)
	}

	if err := repositories.DeleteProduct(config.DB, uint(id)); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	// Stored objects are cleaned up best effort once the rows are gone.
	for _, url := range imageURLs {
		if err := utils.DeleteProductImage(c.Request.Context(), url); err != nil {
			utils.LogError("Failed to delete image object for product %d: %v", id, err)
		}
	}

	utils.LogInfo("Product %d deleted", id)
	utils.Success(c, "Product deleted successfully", nil)
}
