package repositories

import (
	"errors"
	"time"

	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
	"gorm.io/gorm"
)

// VoterIdentity identifies a voter: an authenticated user id, or the caller
// IP for anonymous voters. IP-keyed identity is spoofable and carries no
// database uniqueness guarantee.
type VoterIdentity struct {
	UserID  *uint
	VoterIP string
}

// VoteAction is the outcome of resolving a vote against the existing state.
type VoteAction string

const (
	VoteActionCreated   VoteAction = "created"
	VoteActionUpdated   VoteAction = "updated"
	VoteActionDuplicate VoteAction = "duplicate"
)

// ResolveVoteAction decides how an incoming vote interacts with the voter's
// existing vote: no prior vote inserts, the same value is a rejected
// duplicate, the opposite value toggles in place.
func ResolveVoteAction(existing *models.ReviewVote, isHelpful bool) VoteAction {
	if existing == nil {
		return VoteActionCreated
	}
	if existing.IsHelpful == isHelpful {
		return VoteActionDuplicate
	}
	return VoteActionUpdated
}

// FindVoteByIdentity looks up the identity's vote on a review, or nil
func FindVoteByIdentity(db *gorm.DB, reviewID uint, identity VoterIdentity) (*models.ReviewVote, error) {
	var vote models.ReviewVote
	var err error
	if identity.UserID != nil {
		err = db.Where("review_id = ? AND user_id = ?", reviewID, *identity.UserID).First(&vote).Error
	} else {
		err = db.Where("review_id = ? AND user_id IS NULL AND voter_ip = ?", reviewID, identity.VoterIP).First(&vote).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// CastVote applies a vote for the identity and returns the action taken.
// Same-value re-votes are rejected; opposite-value re-votes overwrite the
// existing row and refresh its timestamp.
func CastVote(db *gorm.DB, reviewID uint, identity VoterIdentity, isHelpful bool) (VoteAction, error) {
	existing, err := FindVoteByIdentity(db, reviewID, identity)
	if err != nil {
		return "", err
	}

	switch ResolveVoteAction(existing, isHelpful) {
	case VoteActionDuplicate:
		return VoteActionDuplicate, utils.BadRequestError("You have already cast the same vote on this review", nil)
	case VoteActionUpdated:
		existing.IsHelpful = isHelpful
		existing.CreatedAt = time.Now().UTC()
		if err := db.Save(existing).Error; err != nil {
			return "", err
		}
		return VoteActionUpdated, nil
	default:
		vote := &models.ReviewVote{
			ReviewID:  reviewID,
			UserID:    identity.UserID,
			VoterIP:   identity.VoterIP,
			IsHelpful: isHelpful,
		}
		if err := db.Create(vote).Error; err != nil {
			return "", err
		}
		return VoteActionCreated, nil
	}
}

// RemoveVote deletes the identity's vote on a review
func RemoveVote(db *gorm.DB, reviewID uint, identity VoterIdentity) error {
	vote, err := FindVoteByIdentity(db, reviewID, identity)
	if err != nil {
		return err
	}
	if vote == nil {
		return utils.NotFoundError("Vote not found", nil)
	}
	return db.Delete(vote).Error
}

// CountVotes recomputes a review's helpful/not-helpful counts by live
// aggregation
func CountVotes(db *gorm.DB, reviewID uint) (helpful, notHelpful int64, err error) {
	err = db.Model(&models.ReviewVote{}).
		Where("review_id = ? AND is_helpful = ?", reviewID, true).Count(&helpful).Error
	if err != nil {
		return 0, 0, err
	}
	err = db.Model(&models.ReviewVote{}).
		Where("review_id = ? AND is_helpful = ?", reviewID, false).Count(&notHelpful).Error
	if err != nil {
		return 0, 0, err
	}
	return helpful, notHelpful, nil
}

// VoteRecord is the flat vote shape exposed to admin moderation.
type VoteRecord struct {
	ID            uint   `json:"id"`
	ReviewID      uint   `json:"review_id"`
	ReviewComment string `json:"review_comment"`
	ReviewRating  int    `json:"review_rating"`
	ProductID     uint   `json:"product_id"`
	ProductName   string `json:"product_name"`
	UserID        *uint  `json:"user_id"`
	UserName      string `json:"user_name"`
	VoterIP       string `json:"voter_ip"`
	IsHelpful     bool   `json:"is_helpful"`
	CreatedAt     string `json:"created_at"`
}

// VoteModerationSummary aggregates the vote table for the admin listing.
type VoteModerationSummary struct {
	TotalVotes          int64 `json:"total_votes"`
	HelpfulVotes        int64 `json:"helpful_votes"`
	NotHelpfulVotes     int64 `json:"not_helpful_votes"`
	RegisteredUserVotes int64 `json:"registered_user_votes"`
	AnonymousVotes      int64 `json:"anonymous_votes"`
}

// ListAllVotes returns every vote with review, product and voter data joined
// in, newest first, plus a summary.
func ListAllVotes(db *gorm.DB) ([]VoteRecord, *VoteModerationSummary, error) {
	var votes []models.ReviewVote
	if err := db.Order("created_at DESC").Find(&votes).Error; err != nil {
		return nil, nil, err
	}

	records := make([]VoteRecord, 0, len(votes))
	summary := &VoteModerationSummary{TotalVotes: int64(len(votes))}
	for _, v := range votes {
		record := VoteRecord{
			ID:        v.ID,
			ReviewID:  v.ReviewID,
			UserID:    v.UserID,
			UserName:  "Anonymous",
			VoterIP:   v.VoterIP,
			IsHelpful: v.IsHelpful,
			CreatedAt: v.CreatedAt.Format("2006-01-02 15:04:05"),
		}

		var review models.ProductReview
		if err := db.First(&review, v.ReviewID).Error; err == nil {
			record.ReviewComment = review.Comment
			record.ReviewRating = review.Rating
			record.ProductID = review.ProductID
			var productName string
			if err := db.Model(&models.Product{}).Where("id = ?", review.ProductID).
				Select("name").Scan(&productName).Error; err == nil {
				record.ProductName = productName
			}
		}

		if v.UserID != nil {
			summary.RegisteredUserVotes++
			var userName string
			if err := db.Model(&models.User{}).Where("id = ?", *v.UserID).
				Select("name").Scan(&userName).Error; err == nil && userName != "" {
				record.UserName = userName
			}
		} else {
			summary.AnonymousVotes++
		}

		if v.IsHelpful {
			summary.HelpfulVotes++
		} else {
			summary.NotHelpfulVotes++
		}

		records = append(records, record)
	}
	return records, summary, nil
}

// DeleteAllVotes truncates the vote table and returns the deleted count
func DeleteAllVotes(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.ReviewVote{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	if err := db.Where("1 = 1").Delete(&models.ReviewVote{}).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteVotesByReview removes every vote on one review
func DeleteVotesByReview(db *gorm.DB, reviewID uint) (int64, error) {
	var count int64
	if err := db.Model(&models.ReviewVote{}).Where("review_id = ?", reviewID).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	if err := db.Where("review_id = ?", reviewID).Delete(&models.ReviewVote{}).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteVotesByProduct removes every vote under a product's reviews
func DeleteVotesByProduct(db *gorm.DB, productID uint) (int64, error) {
	var reviewIDs []uint
	if err := db.Model(&models.ProductReview{}).Where("product_id = ?", productID).
		Pluck("id", &reviewIDs).Error; err != nil {
		return 0, err
	}
	if len(reviewIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := db.Model(&models.ReviewVote{}).Where("review_id IN ?", reviewIDs).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	if err := db.Where("review_id IN ?", reviewIDs).Delete(&models.ReviewVote{}).Error; err != nil {
		return 0, err
	}
	return count, nil
}
