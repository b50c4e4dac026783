// Package gateway wraps the payment provider SDKs behind the two small
// contracts the order workflow consumes. Handlers depend on these
// interfaces so tests can substitute fakes for the live SDK clients.
package gateway

// LineItem is one payable row of a hosted checkout session. UnitAmount
// is expressed in minor currency units (paise for INR).
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// CheckoutSession is the result of creating a hosted checkout session
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionStatus is the re-fetched state of a checkout session
type SessionStatus struct {
	PaymentStatus   string
	PaymentIntentID string
}

// PaidStatus is the session payment status reported once the customer
// has completed payment.
const PaidStatus = "paid"

// Stripe creates and re-fetches hosted checkout sessions
type Stripe interface {
	CreateCheckoutSession(items []LineItem, currency, successURL, cancelURL string) (*CheckoutSession, error)
	RetrieveSession(sessionID string) (*SessionStatus, error)
}

// GatewayOrder is the provider-side order a payment widget opens against
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Razorpay creates gateway orders for the payment widget
type Razorpay interface {
	CreateOrder(amountMinorUnits int64, currency, receipt string) (*GatewayOrder, error)
}
