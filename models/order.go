package models

import (
	"time"
)

// Order status constants. Status is a flat allow-list: any listed value may
// follow any other, there is no transition graph.
const (
	OrderStatusPaymentPending = "Payment Pending"
	OrderStatusPaymentPaid    = "Payment Paid"
	OrderStatusPaymentFailed  = "Payment Failed"
	OrderStatusPlaced         = "Order Placed"
	OrderStatusProcessing     = "Processing"
	OrderStatusShipped        = "Shipped"
	OrderStatusInTransit      = "InTransit"
	OrderStatusOutForDelivery = "OutForDelivery"
	OrderStatusDelivered      = "Delivered"
	OrderStatusFailedDelivery = "FailedDelivery"
	OrderStatusReturned       = "Returned"
	OrderStatusFailed         = "Failed"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "Online"
)

// ValidOrderStatuses is the full allow-list accepted by the admin status
// update endpoint.
var ValidOrderStatuses = []string{
	OrderStatusPaymentPending,
	OrderStatusPaymentPaid,
	OrderStatusPaymentFailed,
	OrderStatusPlaced,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusInTransit,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusFailedDelivery,
	OrderStatusReturned,
	OrderStatusFailed,
}

// IsValidOrderStatus reports whether status is in the allow-list.
func IsValidOrderStatus(status string) bool {
	for _, s := range ValidOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Order snapshots the shipping/contact fields at creation time so later
// profile edits do not rewrite order history. Amount is stored in integer
// minor currency units (paise).
type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `json:"user_id"`
	User   User `json:"user" gorm:"foreignKey:UserID"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`

	Status        string `json:"status"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency" gorm:"default:'INR'"`
	PaymentMethod string `json:"payment_method"`

	// Gateway reference fields, empty until an online payment completes.
	RazorpayOrderID  string `json:"razorpay_order_id"`
	PaymentID        string `json:"payment_id"`
	PaymentSignature string `json:"-"`

	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	OrderItems []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem captures the unit price at order time so catalog price changes
// never alter an existing order.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
}
