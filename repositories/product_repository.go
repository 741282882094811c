package repositories

import (
	"errors"

	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
	"gorm.io/gorm"
)

// ProductDetail is the flat product shape returned by catalog reads. It is
// assembled by explicit queries instead of lazy navigation.
type ProductDetail struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Brand              string   `json:"brand"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	Currency           string   `json:"currency"`
	CategoryID         *uint    `json:"category_id"`
	CategoryName       string   `json:"category_name"`
	IsFeatured         bool     `json:"is_featured"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	CouponCode         *string  `json:"coupon_code"`
	ImageURLs          []string `json:"image_urls"`
	Sizes              []string `json:"sizes"`
	AverageRating      float64  `json:"average_rating"`
	ReviewsCount       int64    `json:"reviews_count"`
}

// FindProductByID returns a product row by primary key
func FindProductByID(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Product not found", err)
		}
		return nil, err
	}
	return &product, nil
}

// GetProductDetail assembles the flat detail DTO for a single product
func GetProductDetail(db *gorm.DB, id uint) (*ProductDetail, error) {
	product, err := FindProductByID(db, id)
	if err != nil {
		return nil, err
	}
	detail, err := buildProductDetail(db, product)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// ListProducts returns flat detail DTOs for the whole catalog, or only the
// featured subset.
func ListProducts(db *gorm.DB, featuredOnly bool) ([]ProductDetail, error) {
	query := db.Model(&models.Product{}).Order("id")
	if featuredOnly {
		query = query.Where("is_featured = ?", true)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}

	details := make([]ProductDetail, 0, len(products))
	for i := range products {
		detail, err := buildProductDetail(db, &products[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// ListProductsForCategory returns detail DTOs for every product referencing
// the category.
func ListProductsForCategory(db *gorm.DB, categoryID uint) ([]ProductDetail, error) {
	var products []models.Product
	if err := db.Where("category_id = ?", categoryID).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}

	details := make([]ProductDetail, 0, len(products))
	for i := range products {
		detail, err := buildProductDetail(db, &products[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// ProductSummary pairs basic product fields with the category name. Products
// without a category are excluded, matching the inner join it is built on.
type ProductSummary struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	CategoryID   *uint   `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

// ListProductSummaries joins every categorized product with its category name
func ListProductSummaries(db *gorm.DB) ([]ProductSummary, error) {
	var summaries []ProductSummary
	err := db.Model(&models.Product{}).
		Select("products.id, products.name, products.brand, products.price, products.category_id, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Order("products.id").
		Scan(&summaries).Error
	return summaries, err
}

func buildProductDetail(db *gorm.DB, product *models.Product) (*ProductDetail, error) {
	detail := &ProductDetail{
		ID:                 product.ID,
		Name:               product.Name,
		Brand:              product.Brand,
		Description:        product.Description,
		Price:              product.Price,
		Currency:           product.Currency,
		CategoryID:         product.CategoryID,
		CategoryName:       DefaultCategoryName,
		IsFeatured:         product.IsFeatured,
		DiscountPercentage: product.DiscountPercentage,
		CouponCode:         product.CouponCode,
		ImageURLs:          []string{},
		Sizes:              []string{},
	}

	if product.CategoryID != nil {
		var name string
		err := db.Model(&models.Category{}).Where("id = ?", *product.CategoryID).
			Select("name").Scan(&name).Error
		if err != nil {
			return nil, err
		}
		if name != "" {
			detail.CategoryName = name
		}
	}

	if err := db.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).
		Order("id").Pluck("url", &detail.ImageURLs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.ProductSize{}).Where("product_id = ?", product.ID).
		Order("id").Pluck("name", &detail.Sizes).Error; err != nil {
		return nil, err
	}

	type ratingAgg struct {
		Avg   float64
		Count int64
	}
	var agg ratingAgg
	err := db.Model(&models.ProductReview{}).Where("product_id = ?", product.ID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	detail.AverageRating = agg.Avg
	detail.ReviewsCount = agg.Count

	return detail, nil
}

// ReplaceProductImages swaps a product's ordered image list
func ReplaceProductImages(db *gorm.DB, productID uint, urls []string) error {
	if err := db.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	for _, url := range urls {
		if err := db.Create(&models.ProductImage{ProductID: productID, URL: url}).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReplaceProductSizes swaps a product's ordered size label list
func ReplaceProductSizes(db *gorm.DB, productID uint, sizes []string) error {
	if err := db.Where("product_id = ?", productID).Delete(&models.ProductSize{}).Error; err != nil {
		return err
	}
	for _, size := range sizes {
		if err := db.Create(&models.ProductSize{ProductID: productID, Name: size}).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteProduct removes a product with its images, sizes, reviews, votes and
// any cart lines still referencing it
func DeleteProduct(db *gorm.DB, id uint) error {
	product, err := FindProductByID(db, id)
	if err != nil {
		return err
	}

	var reviewIDs []uint
	if err := db.Model(&models.ProductReview{}).Where("product_id = ?", id).
		Pluck("id", &reviewIDs).Error; err != nil {
		return err
	}
	if len(reviewIDs) > 0 {
		if err := db.Where("review_id IN ?", reviewIDs).Delete(&models.ReviewVote{}).Error; err != nil {
			return err
		}
		if err := db.Where("product_id = ?", id).Delete(&models.ProductReview{}).Error; err != nil {
			return err
		}
	}
	if err := db.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", id).Delete(&models.ProductSize{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}

	return db.Delete(product).Error
}

// FindProductByVoucher matches a product against a voucher code
func FindProductByVoucher(db *gorm.DB, productID uint, code string) (*models.Product, error) {
	var product models.Product
	err := db.Where("id = ? AND coupon_code = ?", productID, code).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Invalid or expired voucher code", err)
		}
		return nil, err
	}
	return &product, nil
}

// ProductExists reports whether the product id is present
func ProductExists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, utils.WrapError(err, "failed to check product existence")
	}
	return count > 0, nil
}
