package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignature(t *testing.T) {
	got := ComputeSignature("order_test123", "pay_test456", "test_secret")
	assert.Equal(t, "80c5e4f6be6e2acc8efac61036a58f99b47ead0f6b93feff0ca5cfd41054f0f0", got)
}

func TestComputeSignatureChangesWithInputs(t *testing.T) {
	base := ComputeSignature("order_abc", "pay_def", "secret")

	assert.NotEqual(t, base, ComputeSignature("order_abd", "pay_def", "secret"))
	assert.NotEqual(t, base, ComputeSignature("order_abc", "pay_deg", "secret"))
	assert.NotEqual(t, base, ComputeSignature("order_abc", "pay_def", "secres"))
}

func TestVerifySignature(t *testing.T) {
	g := NewRazorpayGateway("key_id", "test_secret")

	valid := ComputeSignature("order_test123", "pay_test456", "test_secret")
	assert.True(t, g.VerifySignature("order_test123", "pay_test456", valid))

	// Flip one hex character
	tampered := "0" + valid[1:]
	if tampered == valid {
		tampered = "1" + valid[1:]
	}
	assert.False(t, g.VerifySignature("order_test123", "pay_test456", tampered))

	assert.False(t, g.VerifySignature("order_test123", "pay_test456", ""))
	assert.False(t, g.VerifySignature("order_other", "pay_test456", valid))
}
