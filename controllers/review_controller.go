package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// ReviewRequest carries the rating and comment for create and update.
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return 0, false
	}
	return uint(id), true
}

func parseReviewID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid review ID", nil)
		return 0, false
	}
	return uint(id), true
}

// CreateReview adds a review to a product. The reviewer must have
// previously ordered the product, and may review it only once.
func CreateReview(c *gin.Context) {
	utils.LogInfo("CreateReview called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if !utils.ValidateRating(req.Rating) {
		utils.BadRequest(c, "Rating must be between 1 and 5", nil)
		return
	}

	exists, err := repositories.ProductExists(config.DB, productID)
	if err != nil {
		utils.LogError("Product lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to create review", nil)
		return
	}
	if !exists {
		utils.NotFound(c, "Product not found")
		return
	}

	ordered, err := repositories.HasUserOrderedProduct(config.DB, user.ID, productID)
	if err != nil {
		utils.LogError("Purchase check failed for user %d product %d: %v", user.ID, productID, err)
		utils.InternalServerError(c, "Failed to create review", nil)
		return
	}
	if !ordered {
		utils.BadRequest(c, "You can only review products you have ordered", nil)
		return
	}

	existing, err := repositories.FindReviewByUserAndProduct(config.DB, user.ID, productID)
	if err != nil {
		utils.LogError("Duplicate review check failed: %v", err)
		utils.InternalServerError(c, "Failed to create review", nil)
		return
	}
	if existing != nil {
		utils.BadRequest(c, "You have already reviewed this product", nil)
		return
	}

	review := models.ProductReview{
		ProductID: productID,
		UserID:    user.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := repositories.CreateReview(config.DB, &review); err != nil {
		utils.LogError("Failed to create review: %v", err)
		utils.InternalServerError(c, "Failed to create review", nil)
		return
	}

	detail, err := repositories.GetReviewDetail(config.DB, productID, review.ID)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Review %d created by user %d on product %d", review.ID, user.ID, productID)
	utils.Created(c, "Review created successfully", gin.H{"review": detail})
}

// GetReviewsForProduct lists a product's reviews with vote counts. Public.
func GetReviewsForProduct(c *gin.Context) {
	utils.LogInfo("GetReviewsForProduct called")

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	exists, err := repositories.ProductExists(config.DB, productID)
	if err != nil {
		utils.LogError("Product lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}
	if !exists {
		utils.NotFound(c, "Product not found")
		return
	}

	reviews, err := repositories.ListReviewsForProduct(config.DB, productID)
	if err != nil {
		utils.LogError("Failed to list reviews for product %d: %v", productID, err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}
	utils.Success(c, "Reviews retrieved successfully", gin.H{"reviews": reviews})
}

// GetReview returns one review with live vote counts. Public.
func GetReview(c *gin.Context) {
	utils.LogInfo("GetReview called")

	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	reviewID, ok := parseReviewID(c)
	if !ok {
		return
	}

	detail, err := repositories.GetReviewDetail(config.DB, productID, reviewID)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	utils.Success(c, "Review retrieved successfully", gin.H{"review": detail})
}

// GetReviewSummary returns a product's average rating and review count. Public.
func GetReviewSummary(c *gin.Context) {
	utils.LogInfo("GetReviewSummary called")

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	exists, err := repositories.ProductExists(config.DB, productID)
	if err != nil {
		utils.LogError("Product lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch review summary", nil)
		return
	}
	if !exists {
		utils.NotFound(c, "Product not found")
		return
	}

	summary, err := repositories.GetReviewSummaryForProduct(config.DB, productID)
	if err != nil {
		utils.LogError("Failed to summarize reviews for product %d: %v", productID, err)
		utils.InternalServerError(c, "Failed to fetch review summary", nil)
		return
	}
	utils.Success(c, "Review summary retrieved successfully", gin.H{"summary": summary})
}
