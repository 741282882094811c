package controllers

import (
	"fmt"
	"math"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/gateway"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

var paymentGateway gateway.PaymentGateway

// SetPaymentGateway overrides the gateway used at checkout. Mainly for tests.
func SetPaymentGateway(g gateway.PaymentGateway) {
	paymentGateway = g
}

func getPaymentGateway() gateway.PaymentGateway {
	if paymentGateway == nil {
		paymentGateway = gateway.NewRazorpayGatewayFromEnv()
	}
	return paymentGateway
}

// OrderItemRequest is one checkout line.
type OrderItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Size      string `json:"size"`
}

// CreateOrderRequest carries the shipping snapshot, payment method and lines.
type CreateOrderRequest struct {
	FirstName     string             `json:"first_name" binding:"required"`
	LastName      string             `json:"last_name"`
	Email         string             `json:"email" binding:"required"`
	Phone         string             `json:"phone" binding:"required"`
	Address       string             `json:"address" binding:"required"`
	City          string             `json:"city" binding:"required"`
	State         string             `json:"state"`
	ZipCode       string             `json:"zip_code" binding:"required"`
	Country       string             `json:"country"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
}

// OrderTotal sums quantity times unit price across the order lines.
func OrderTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ToPaise converts a rupee amount to integer paise.
func ToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder places an order. The server prices every line from the
// catalog and ignores any client-supplied amounts. COD orders are placed
// immediately; online orders open a gateway order and await confirmation.
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if len(req.Items) == 0 {
		utils.BadRequest(c, "Order must contain at least one item", nil)
		return
	}
	if req.PaymentMethod != models.PaymentMethodCOD && req.PaymentMethod != models.PaymentMethodOnline {
		utils.BadRequest(c, "Payment method must be COD or Online", nil)
		return
	}
	if req.Country == "" {
		req.Country = "India"
	}

	var orderItems []models.OrderItem
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			utils.BadRequest(c, "Quantity must be positive", gin.H{"product_id": line.ProductID})
			return
		}
		product, err := repositories.FindProductByID(config.DB, line.ProductID)
		if err != nil {
			if utils.IsNotFoundError(err) {
				utils.NotFound(c, fmt.Sprintf("Product %d not found", line.ProductID))
				return
			}
			utils.RespondWithError(c, err)
			return
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
			Size:      line.Size,
		})
	}

	total := OrderTotal(orderItems)
	amountPaise := ToPaise(total)

	order := models.Order{
		UserID:        user.ID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		Amount:        amountPaise,
		Currency:      "INR",
		PaymentMethod: req.PaymentMethod,
		OrderItems:    orderItems,
	}

	if req.PaymentMethod == models.PaymentMethodCOD {
		order.Status = models.OrderStatusPlaced
	} else {
		order.Status = models.OrderStatusPaymentPending
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		utils.LogError("Failed to persist order for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}

	response := gin.H{
		"order_id":       order.ID,
		"status":         order.Status,
		"amount":         order.Amount,
		"currency":       order.Currency,
		"payment_method": order.PaymentMethod,
	}

	if req.PaymentMethod == models.PaymentMethodOnline {
		receipt := fmt.Sprintf("order_rcptid_%d", order.ID)
		remote, err := getPaymentGateway().CreateRemoteOrder(amountPaise, order.Currency, receipt)
		if err != nil {
			utils.LogError("Gateway order creation failed for order %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to initiate payment", nil)
			return
		}
		if err := config.DB.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("razorpay_order_id", remote.ID).Error; err != nil {
			utils.LogError("Failed to store gateway order id for order %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to initiate payment", nil)
			return
		}
		response["razorpay_order_id"] = remote.ID
	}

	utils.LogInfo("Order %d created for user %d (%s, %d paise)", order.ID, user.ID, order.PaymentMethod, order.Amount)
	utils.Created(c, "Order created successfully", response)
}
