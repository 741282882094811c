package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range ValidOrderStatuses {
		assert.True(t, IsValidOrderStatus(status), status)
	}

	assert.False(t, IsValidOrderStatus("Cancelled"))
	assert.False(t, IsValidOrderStatus("payment pending"))
	assert.False(t, IsValidOrderStatus(""))
}

func TestOrderStatusAllowList(t *testing.T) {
	assert.Len(t, ValidOrderStatuses, 12)
	assert.Contains(t, ValidOrderStatuses, OrderStatusPlaced)
	assert.Contains(t, ValidOrderStatuses, OrderStatusPaymentPaid)
	assert.Contains(t, ValidOrderStatuses, OrderStatusPaymentFailed)
}
