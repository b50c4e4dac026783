package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayClient implements Razorpay against the official SDK
type RazorpayClient struct {
	client *razorpay.Client
}

// NewRazorpayClient returns an adapter around the SDK client
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder creates a gateway order the payment widget opens against.
// Amount is in minor currency units; receipt carries our order id.
func (r *RazorpayClient) CreateOrder(amountMinorUnits int64, currency, receipt string) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":          amountMinorUnits,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	rzOrder, err := r.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	id, ok := rzOrder["id"].(string)
	if !ok {
		return nil, fmt.Errorf("razorpay order response missing id: %v", rzOrder)
	}

	return &GatewayOrder{
		ID:       id,
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

// VerifyRazorpaySignature recomputes the expected signature as
// HMAC-SHA256(secret, "orderID|paymentID") and compares it in constant
// time against the client-supplied one.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
