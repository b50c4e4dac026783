package gateway

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeClient implements Stripe against the official SDK
type StripeClient struct{}

// NewStripeClient sets the SDK key and returns the adapter
func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

// CreateCheckoutSession creates a hosted checkout session in payment mode
func (s *StripeClient) CreateCheckoutSession(items []LineItem, currency, successURL, cancelURL string) (*CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// RetrieveSession re-fetches a checkout session's payment status
func (s *StripeClient) RetrieveSession(sessionID string) (*SessionStatus, error) {
	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, err
	}

	status := &SessionStatus{PaymentStatus: string(sess.PaymentStatus)}
	if sess.PaymentIntent != nil {
		status.PaymentIntentID = sess.PaymentIntent.ID
	}
	return status, nil
}
