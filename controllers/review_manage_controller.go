package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// UpdateReview edits a review's rating and comment. Only the review's
// author or an admin may change it.
func UpdateReview(c *gin.Context) {
	utils.LogInfo("UpdateReview called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	reviewID, ok := parseReviewID(c)
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

	review, err := repositories.FindReviewByID(config.DB, reviewID)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}
	if review.UserID != user.ID && !user.IsAdminRole() {
		utils.Forbidden(c, "You can only edit your own reviews")
		return
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := config.DB.Save(review).Error; err != nil {
		utils.LogError("Failed to update review %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to update review", nil)
		return
	}

	detail, err := repositories.GetReviewDetail(config.DB, review.ProductID, review.ID)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Review %d updated by user %d", review.ID, user.ID)
	utils.Success(c, "Review updated successfully", gin.H{"review": detail})
}

// AdminDeleteReview removes a review and its votes. Admin only.
func AdminDeleteReview(c *gin.Context) {
	utils.LogInfo("AdminDeleteReview called")

	reviewID, ok := parseReviewID(c)
	if !ok {
		return
	}

	review, err := repositories.FindReviewByID(config.DB, reviewID)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	if err := repositories.DeleteReview(config.DB, review.ID); err != nil {
		utils.LogError("Failed to delete review %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to delete review", nil)
		return
	}

	utils.LogInfo("Review %d deleted", review.ID)
	utils.Success(c, "Review deleted successfully", nil)
}

// GetAllReviews lists every review across products. Admin only.
func GetAllReviews(c *gin.Context) {
	utils.LogInfo("GetAllReviews called")

	reviews, err := repositories.ListAllReviews(config.DB)
	if err != nil {
		utils.LogError("Failed to list all reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}
	utils.Success(c, "Reviews retrieved successfully", gin.H{"reviews": reviews})
}
