package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modernhub/ecommerce-api/models"
)

func TestOrderTotal(t *testing.T) {
	items := []models.OrderItem{
		{Price: 50.00, Quantity: 2},
		{Price: 19.99, Quantity: 1},
	}
	assert.InDelta(t, 119.99, OrderTotal(items), 0.0001)
}

func TestOrderTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, OrderTotal(nil))
}

func TestToPaise(t *testing.T) {
	assert.Equal(t, int64(10000), ToPaise(100.00))
	assert.Equal(t, int64(11999), ToPaise(119.99))
	assert.Equal(t, int64(1), ToPaise(0.01))
	assert.Equal(t, int64(0), ToPaise(0))

	// Float rounding must not lose a paisa
	assert.Equal(t, int64(2999), ToPaise(29.99))
}

func TestVoucherDiscount(t *testing.T) {
	discount, final := VoucherDiscount(100.00, 10)
	assert.Equal(t, 10.00, discount)
	assert.Equal(t, 90.00, final)

	discount, final = VoucherDiscount(99.99, 15)
	assert.Equal(t, 15.00, discount)
	assert.Equal(t, 84.99, final)

	discount, final = VoucherDiscount(50.00, 0)
	assert.Equal(t, 0.00, discount)
	assert.Equal(t, 50.00, final)
}
