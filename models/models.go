package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values carried in the JWT role claim.
const (
	RoleUser       = "User"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

// User represents an account in the system. Admins and super admins are
// regular rows distinguished by the Role field.
type User struct {
	gorm.Model
	Name             string     `json:"name"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `json:"-"`
	Role             string     `json:"role" gorm:"default:'User'"`
	IsSuperAdmin     bool       `json:"is_super_admin" gorm:"default:false"`
	IsMainSuperAdmin bool       `json:"-" gorm:"default:false"`
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
}

// IsAdminRole reports whether the user holds an admin-level role.
func (u *User) IsAdminRole() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// Category represents a product category
type Category struct {
	gorm.Model
	Name     string    `json:"name" gorm:"uniqueIndex;not null"`
	Products []Product `json:"products,omitempty"`
}

// Product represents a catalog product
type Product struct {
	gorm.Model
	Name               string          `json:"name" gorm:"not null"`
	Brand              string          `json:"brand"`
	Description        string          `json:"description"`
	Price              float64         `json:"price"`
	CategoryID         *uint           `json:"category_id"`
	Category           *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Currency           string          `json:"currency" gorm:"default:'INR'"`
	IsFeatured         bool            `json:"is_featured" gorm:"default:false"`
	DiscountPercentage *float64        `json:"discount_percentage"`
	CouponCode         *string         `json:"coupon_code"`
	Images             []ProductImage  `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Sizes              []ProductSize   `json:"sizes" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews            []ProductReview `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

// ProductImage is a single ordered catalog image for a product.
type ProductImage struct {
	gorm.Model
	ProductID uint   `json:"product_id"`
	URL       string `json:"url"`
}

// ProductSize is a size label offered for a product.
type ProductSize struct {
	gorm.Model
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
}

// Cart holds a user's pending line items. One cart per user, created lazily
// on first access.
type Cart struct {
	gorm.Model
	UserID uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem is a cart line keyed by (cart, product). Quantity stays >= 1;
// updating to 0 removes the line. Lines are hard-deleted so the composite
// unique index never blocks a re-add.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `json:"cart_id" gorm:"uniqueIndex:idx_cart_product;not null"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_cart_product;not null"`
	Product   Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductReview is a rating plus comment left by a buyer. At most one review
// per (product, user), enforced by an application check before insert.
type ProductReview struct {
	gorm.Model
	ProductID uint         `json:"product_id" gorm:"not null"`
	Product   *Product     `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	UserID    uint         `json:"user_id" gorm:"not null"`
	User      *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Rating    int          `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment   string       `json:"comment"`
	Votes     []ReviewVote `json:"votes,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// ReviewVote records a helpful/not-helpful vote on a review. Authenticated
// voters are keyed by (review_id, user_id) with a unique index; anonymous
// voters carry a NULL user id and are keyed by voter IP in application logic
// only, so their uniqueness is not backed by the database.
type ReviewVote struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ReviewID  uint           `json:"review_id" gorm:"uniqueIndex:idx_review_user;not null"`
	Review    *ProductReview `json:"-" gorm:"foreignKey:ReviewID"`
	UserID    *uint          `json:"user_id" gorm:"uniqueIndex:idx_review_user"`
	User      *User          `json:"-" gorm:"foreignKey:UserID"`
	VoterIP   string         `json:"voter_ip"`
	IsHelpful bool           `json:"is_helpful"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
