package repositories

import (
	"errors"

	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
	"gorm.io/gorm"
)

// CartItemView is a flat cart line with catalog data joined in.
type CartItemView struct {
	ProductID   uint     `json:"product_id"`
	ProductName string   `json:"product_name"`
	Quantity    int      `json:"quantity"`
	Price       float64  `json:"price"`
	ImageURLs   []string `json:"image_urls"`
}

// CartView is the flat cart shape returned to the client.
type CartView struct {
	UserID uint           `json:"user_id"`
	Items  []CartItemView `json:"items"`
}

// GetOrCreateCart returns the user's cart, creating it lazily on first access
func GetOrCreateCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{UserID: userID}
	if err := db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCartView assembles the flat cart DTO with product names, prices and
// image URLs joined in by explicit queries.
func GetCartView(db *gorm.DB, userID uint) (*CartView, error) {
	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.ID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}

	view := &CartView{UserID: userID, Items: make([]CartItemView, 0, len(items))}
	for _, item := range items {
		var product models.Product
		if err := db.First(&product, item.ProductID).Error; err != nil {
			// A line whose product has since been removed is dropped
			// instead of breaking every cart read.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
					return nil, err
				}
				continue
			}
			return nil, err
		}
		var urls []string
		if err := db.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).
			Order("id").Pluck("url", &urls).Error; err != nil {
			return nil, err
		}
		view.Items = append(view.Items, CartItemView{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.Price,
			ImageURLs:   urls,
		})
	}
	return view, nil
}

// AddCartItem increments an existing line for the product or inserts a new one
func AddCartItem(db *gorm.DB, userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return utils.BadRequestError("Quantity must be at least 1", nil)
	}

	if _, err := FindProductByID(db, productID); err != nil {
		return err
	}

	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	if err == nil {
		item.Quantity += quantity
		return db.Save(&item).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(&models.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	}).Error
}

// UpdateCartItem sets a line's quantity. Zero removes the line, negative is
// rejected.
func UpdateCartItem(db *gorm.DB, userID, productID uint, quantity int) error {
	if quantity < 0 {
		return utils.BadRequestError("Quantity cannot be negative", nil)
	}

	cart, err := findCart(db, userID)
	if err != nil {
		return err
	}

	var item models.CartItem
	if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Item not found in cart", err)
		}
		return err
	}

	if quantity == 0 {
		return db.Delete(&item).Error
	}

	item.Quantity = quantity
	return db.Save(&item).Error
}

// RemoveCartItem drops a line from the cart
func RemoveCartItem(db *gorm.DB, userID, productID uint) error {
	cart, err := findCart(db, userID)
	if err != nil {
		return err
	}

	var item models.CartItem
	if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("Item not found in cart", err)
		}
		return err
	}

	return db.Delete(&item).Error
}

// ClearCart removes every line from the user's cart
func ClearCart(db *gorm.DB, userID uint) error {
	cart, err := findCart(db, userID)
	if err != nil {
		return err
	}
	return db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
}

func findCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Cart not found", err)
		}
		return nil, err
	}
	return &cart, nil
}
