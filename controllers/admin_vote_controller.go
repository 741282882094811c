package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// GetAllVotes lists every vote with review, product and voter context,
// plus aggregate counts. Admin only.
func GetAllVotes(c *gin.Context) {
	utils.LogInfo("GetAllVotes called")

	votes, summary, err := repositories.ListAllVotes(config.DB)
	if err != nil {
		utils.LogError("Failed to list votes: %v", err)
		utils.InternalServerError(c, "Failed to fetch votes", nil)
		return
	}
	utils.Success(c, "Votes retrieved successfully", gin.H{
		"votes":   votes,
		"summary": summary,
	})
}

// DeleteAllVotes wipes every vote in the system. SuperAdmin only.
func DeleteAllVotes(c *gin.Context) {
	utils.LogInfo("DeleteAllVotes called")

	deleted, err := repositories.DeleteAllVotes(config.DB)
	if err != nil {
		utils.LogError("Failed to delete all votes: %v", err)
		utils.InternalServerError(c, "Failed to delete votes", nil)
		return
	}

	utils.LogInfo("Deleted %d votes", deleted)
	utils.Success(c, "All votes deleted successfully", gin.H{"deleted": deleted})
}

// DeleteVotesByReview removes every vote on one review. Admin only.
func DeleteVotesByReview(c *gin.Context) {
	utils.LogInfo("DeleteVotesByReview called")

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid review ID", nil)
		return
	}

	deleted, err := repositories.DeleteVotesByReview(config.DB, uint(reviewID))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Deleted %d votes from review %d", deleted, reviewID)
	utils.Success(c, "Votes deleted successfully", gin.H{"deleted": deleted})
}

// DeleteVotesByProduct removes every vote across a product's reviews. Admin only.
func DeleteVotesByProduct(c *gin.Context) {
	utils.LogInfo("DeleteVotesByProduct called")

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	deleted, err := repositories.DeleteVotesByProduct(config.DB, uint(productID))
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	utils.LogInfo("Deleted %d votes from product %d", deleted, productID)
	utils.Success(c, "Votes deleted successfully", gin.H{"deleted": deleted})
}
