package repositories

import (
	"errors"

	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
	"gorm.io/gorm"
)

// OrderItemView is a flat order line with the product name joined in.
type OrderItemView struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Size        string  `json:"size,omitempty"`
}

// OrderView is the flat order shape returned by order listings.
type OrderView struct {
	ID              uint            `json:"id"`
	Amount          int64           `json:"amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
	RazorpayOrderID string          `json:"razorpay_order_id,omitempty"`
	OrderDate       string          `json:"order_date"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	ZipCode         string          `json:"zip_code"`
	Country         string          `json:"country"`
	PaymentMethod   string          `json:"payment_method"`
	User            *UserSummary    `json:"user,omitempty"`
	Items           []OrderItemView `json:"items"`
}

// FindOrderByID returns an order by primary key
func FindOrderByID(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Order not found", err)
		}
		return nil, err
	}
	return &order, nil
}

// FindOrderForUser returns an order owned by the given user
func FindOrderForUser(db *gorm.DB, orderID, userID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Order not found", err)
		}
		return nil, err
	}
	return &order, nil
}

// ListOrdersForUser returns the user's orders newest first
func ListOrdersForUser(db *gorm.DB, userID uint) ([]OrderView, error) {
	var orders []models.Order
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return buildOrderViews(db, orders, false)
}

// ListAllOrders returns every order newest first, with the owning user
// joined in, paginated.
func ListAllOrders(db *gorm.DB, pagination *utils.Pagination) ([]OrderView, error) {
	var total int64
	if err := db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, err
	}
	pagination.SetTotal(total)

	var orders []models.Order
	err := db.Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return buildOrderViews(db, orders, true)
}

func buildOrderViews(db *gorm.DB, orders []models.Order, withUser bool) ([]OrderView, error) {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view := OrderView{
			ID:              o.ID,
			Amount:          o.Amount,
			Currency:        o.Currency,
			Status:          o.Status,
			RazorpayOrderID: o.RazorpayOrderID,
			OrderDate:       o.CreatedAt.Format("2006-01-02 15:04:05"),
			FirstName:       o.FirstName,
			LastName:        o.LastName,
			Email:           o.Email,
			Phone:           o.Phone,
			Address:         o.Address,
			City:            o.City,
			State:           o.State,
			ZipCode:         o.ZipCode,
			Country:         o.Country,
			PaymentMethod:   o.PaymentMethod,
		}

		if withUser {
			var user UserSummary
			err := db.Model(&models.User{}).Where("id = ?", o.UserID).
				Select("id, name, email, role").Scan(&user).Error
			if err != nil {
				return nil, err
			}
			view.User = &user
		}

		items, err := listOrderItems(db, o.ID)
		if err != nil {
			return nil, err
		}
		view.Items = items

		views = append(views, view)
	}
	return views, nil
}

func listOrderItems(db *gorm.DB, orderID uint) ([]OrderItemView, error) {
	var items []OrderItemView
	err := db.Model(&models.OrderItem{}).
		Select("order_items.product_id, products.name AS product_name, order_items.quantity, order_items.price, order_items.size").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id").
		Scan(&items).Error
	if items == nil {
		items = []OrderItemView{}
	}
	return items, err
}

// DeleteOrder removes an order together with its items
func DeleteOrder(db *gorm.DB, orderID uint) error {
	order, err := FindOrderByID(db, orderID)
	if err != nil {
		return err
	}
	if err := db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	return db.Delete(order).Error
}

// HasUserOrderedProduct reports whether any of the user's orders, in any
// status, contains the product. This gates review creation.
func HasUserOrderedProduct(db *gorm.DB, userID, productID uint) (bool, error) {
	var count int64
	err := db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
