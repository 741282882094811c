package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// VoteRequest carries the helpful/not-helpful flag.
type VoteRequest struct {
	IsHelpful *bool `json:"is_helpful" binding:"required"`
}

// voterIdentity resolves the caller to a registered user or, when the
// request is anonymous, to the client IP.
func voterIdentity(c *gin.Context) repositories.VoterIdentity {
	if user, ok := middleware.CurrentUser(c); ok {
		userID := user.ID
		return repositories.VoterIdentity{UserID: &userID, VoterIP: c.ClientIP()}
	}
	return repositories.VoterIdentity{VoterIP: c.ClientIP()}
}

// VoteOnReview casts a helpful/not-helpful vote. A repeat vote with the
// same value is rejected; the opposite value toggles the vote in place.
// Anonymous voters are keyed by IP.
func VoteOnReview(c *gin.Context) {
	utils.LogInfo("VoteOnReview called")

	reviewID, ok := parseReviewID(c)
	if !ok {
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if _, err := repositories.FindReviewByID(config.DB, reviewID); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	identity := voterIdentity(c)
	action, err := repositories.CastVote(config.DB, reviewID, identity, *req.IsHelpful)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	helpful, notHelpful, err := repositories.CountVotes(config.DB, reviewID)
	if err != nil {
		utils.LogError("Failed to count votes for review %d: %v", reviewID, err)
		utils.InternalServerError(c, "Failed to fetch vote counts", nil)
		return
	}

	utils.LogInfo("Vote %s on review %d", action, reviewID)
	utils.Success(c, "Vote recorded successfully", gin.H{
		"review_id":         reviewID,
		"action":            action,
		"helpful_count":     helpful,
		"not_helpful_count": notHelpful,
	})
}

// RemoveVoteOnReview withdraws the caller's vote from a review.
func RemoveVoteOnReview(c *gin.Context) {
	utils.LogInfo("RemoveVoteOnReview called")

	reviewID, ok := parseReviewID(c)
	if !ok {
		return
	}

	if _, err := repositories.FindReviewByID(config.DB, reviewID); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	if err := repositories.RemoveVote(config.DB, reviewID, voterIdentity(c)); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	helpful, notHelpful, err := repositories.CountVotes(config.DB, reviewID)
	if err != nil {
		utils.LogError("Failed to count votes for review %d: %v", reviewID, err)
		utils.InternalServerError(c, "Failed to fetch vote counts", nil)
		return
	}

	utils.LogInfo("Vote removed from review %d", reviewID)
	utils.Success(c, "Vote removed successfully", gin.H{
		"review_id":         reviewID,
		"helpful_count":     helpful,
		"not_helpful_count": notHelpful,
	})
}

// GetReviewVotes returns a review's vote counts and, when the caller can
// be identified, their current vote. Public.
func GetReviewVotes(c *gin.Context) {
	utils.LogInfo("GetReviewVotes called")

	reviewID, ok := parseReviewID(c)
	if !ok {
		return
	}

	if _, err := repositories.FindReviewByID(config.DB, reviewID); err != nil {
		utils.RespondWithError(c, err)
		return
	}

	helpful, notHelpful, err := repositories.CountVotes(config.DB, reviewID)
	if err != nil {
		utils.LogError("Failed to count votes for review %d: %v", reviewID, err)
		utils.InternalServerError(c, "Failed to fetch vote counts", nil)
		return
	}

	response := gin.H{
		"review_id":         reviewID,
		"helpful_count":     helpful,
		"not_helpful_count": notHelpful,
		"your_vote":         nil,
	}
	if vote, err := repositories.FindVoteByIdentity(config.DB, reviewID, voterIdentity(c)); err == nil && vote != nil {
		response["your_vote"] = gin.H{"is_helpful": vote.IsHelpful}
	}

	utils.Success(c, "Vote counts retrieved successfully", response)
}
