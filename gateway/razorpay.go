package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"
)

// RemoteOrder is the payment intent created on the gateway side. Its id is
// distinct from the local order id.
type RemoteOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// PaymentGateway creates remote payment intents and verifies payment
// confirmation signatures.
type PaymentGateway interface {
	CreateRemoteOrder(amountMinorUnits int64, currency, receipt string) (*RemoteOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

// RazorpayGateway implements PaymentGateway against the Razorpay Orders API.
type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

// NewRazorpayGateway builds a gateway client from the key pair
func NewRazorpayGateway(key, secret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(key, secret),
		secret: secret,
	}
}

// NewRazorpayGatewayFromEnv builds a gateway client from environment variables
func NewRazorpayGatewayFromEnv() *RazorpayGateway {
	return NewRazorpayGateway(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
}

// CreateRemoteOrder creates a payment intent on Razorpay. Amount is in minor
// currency units (paise).
func (g *RazorpayGateway) CreateRemoteOrder(amountMinorUnits int64, currency, receipt string) (*RemoteOrder, error) {
	orderData := map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": currency,
		"receipt":  receipt,
	}

	rzOrder, err := g.client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	remote := &RemoteOrder{
		ID:       fmt.Sprintf("%v", rzOrder["id"]),
		Amount:   amountMinorUnits,
		Currency: currency,
	}
	if amt, ok := rzOrder["amount"].(float64); ok {
		remote.Amount = int64(amt)
	}
	if cur, ok := rzOrder["currency"].(string); ok {
		remote.Currency = cur
	}

	return remote, nil
}

// VerifySignature checks the callback signature against an HMAC-SHA256 of
// "gatewayOrderID|paymentID" keyed by the gateway secret. The comparison is
// constant-time.
func (g *RazorpayGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	expected := ComputeSignature(gatewayOrderID, paymentID, g.secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ComputeSignature returns the hex HMAC-SHA256 digest Razorpay sends for a
// completed payment.
func ComputeSignature(gatewayOrderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}
