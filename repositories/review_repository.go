package repositories

import (
	"errors"

	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
	"gorm.io/gorm"
)

// ReviewDetail is the flat review shape with live-aggregated vote counts.
// Counts are recomputed on every read, never cached.
type ReviewDetail struct {
	ID              uint   `json:"id"`
	ProductID       uint   `json:"product_id"`
	ProductName     string `json:"product_name,omitempty"`
	UserID          uint   `json:"user_id"`
	UserName        string `json:"user_name"`
	Rating          int    `json:"rating"`
	Comment         string `json:"comment"`
	CreatedAt       string `json:"created_at"`
	HelpfulCount    int64  `json:"helpful_count"`
	NotHelpfulCount int64  `json:"not_helpful_count"`
}

// ReviewSummary aggregates a product's review ratings.
type ReviewSummary struct {
	ProductID     uint    `json:"product_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

// FindReviewByID returns a review by primary key
func FindReviewByID(db *gorm.DB, id uint) (*models.ProductReview, error) {
	var review models.ProductReview
	if err := db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Review not found", err)
		}
		return nil, err
	}
	return &review, nil
}

// FindReviewByUserAndProduct returns the user's review of the product, or
// nil when absent
func FindReviewByUserAndProduct(db *gorm.DB, userID, productID uint) (*models.ProductReview, error) {
	var review models.ProductReview
	err := db.Where("product_id = ? AND user_id = ?", productID, userID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// CreateReview inserts a review after the caller has passed the purchase and
// duplicate checks
func CreateReview(db *gorm.DB, review *models.ProductReview) error {
	return db.Create(review).Error
}

// ListReviewsForProduct returns flat review DTOs for a product, newest first
func ListReviewsForProduct(db *gorm.DB, productID uint) ([]ReviewDetail, error) {
	var reviews []models.ProductReview
	err := db.Where("product_id = ?", productID).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return buildReviewDetails(db, reviews, false)
}

// ListAllReviews returns every review with product names, for moderation
func ListAllReviews(db *gorm.DB) ([]ReviewDetail, error) {
	var reviews []models.ProductReview
	if err := db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return buildReviewDetails(db, reviews, true)
}

// GetReviewDetail returns a single flat review DTO
func GetReviewDetail(db *gorm.DB, productID, reviewID uint) (*ReviewDetail, error) {
	var review models.ProductReview
	err := db.Where("product_id = ? AND id = ?", productID, reviewID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Review not found", err)
		}
		return nil, err
	}
	details, err := buildReviewDetails(db, []models.ProductReview{review}, false)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func buildReviewDetails(db *gorm.DB, reviews []models.ProductReview, withProduct bool) ([]ReviewDetail, error) {
	details := make([]ReviewDetail, 0, len(reviews))
	for _, r := range reviews {
		detail := ReviewDetail{
			ID:        r.ID,
			ProductID: r.ProductID,
			UserID:    r.UserID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		}

		var userName string
		if err := db.Model(&models.User{}).Where("id = ?", r.UserID).
			Select("name").Scan(&userName).Error; err != nil {
			return nil, err
		}
		detail.UserName = userName

		if withProduct {
			var productName string
			if err := db.Model(&models.Product{}).Where("id = ?", r.ProductID).
				Select("name").Scan(&productName).Error; err != nil {
				return nil, err
			}
			detail.ProductName = productName
		}

		helpful, notHelpful, err := CountVotes(db, r.ID)
		if err != nil {
			return nil, err
		}
		detail.HelpfulCount = helpful
		detail.NotHelpfulCount = notHelpful

		details = append(details, detail)
	}
	return details, nil
}

// GetReviewSummaryForProduct aggregates ratings for a product
func GetReviewSummaryForProduct(db *gorm.DB, productID uint) (*ReviewSummary, error) {
	summary := &ReviewSummary{ProductID: productID}
	err := db.Model(&models.ProductReview{}).Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_reviews").
		Scan(summary).Error
	if err != nil {
		return nil, err
	}
	summary.ProductID = productID
	return summary, nil
}

// DeleteReview removes a review together with its votes
func DeleteReview(db *gorm.DB, reviewID uint) error {
	review, err := FindReviewByID(db, reviewID)
	if err != nil {
		return err
	}
	if err := db.Where("review_id = ?", reviewID).Delete(&models.ReviewVote{}).Error; err != nil {
		return err
	}
	return db.Delete(review).Error
}
