package models

import (
	"gorm.io/gorm"
)

// Order status constants. The happy path only moves forward:
// Order Placed -> Processing -> Shipped -> Delivered. Cancelled is
// reachable from any non-terminal state, via admin action only.
const (
	OrderStatusPlaced     = "Order Placed"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// Payment method constants
const (
	PaymentMethodCOD      = "COD"
	PaymentMethodStripe   = "Stripe"
	PaymentMethodRazorpay = "Razorpay"
	PaymentMethodCard     = "Card"
)

// ValidOrderStatuses lists every settable order status
var ValidOrderStatuses = []string{
	OrderStatusPlaced,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ShippingAddress is frozen onto the order at checkout so later edits to
// the user's address book never alter historical orders.
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// Empty reports whether no shipping address was supplied
func (a ShippingAddress) Empty() bool {
	return a.FullName == "" && a.Line1 == "" && a.City == "" && a.PostalCode == ""
}

// PaymentDetail is discriminated by Method; only the fields for that
// method are ever populated. TransactionID is set once an online payment
// is confirmed (COD orders never carry one).
type PaymentDetail struct {
	Method        string `json:"method"`
	Currency      string `json:"currency"`
	TransactionID string `json:"transaction_id,omitempty"`

	StripeSessionID       string `json:"stripe_session_id,omitempty"`
	StripePaymentIntentID string `json:"stripe_payment_intent_id,omitempty"`

	RazorpayOrderID   string `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string `json:"razorpay_signature,omitempty"`

	CardBrand    string `json:"card_brand,omitempty"`
	CardLast4    string `json:"card_last4,omitempty"`
	CardExpMonth int    `json:"card_exp_month,omitempty"`
	CardExpYear  int    `json:"card_exp_year,omitempty"`
}

// NewPaymentDetail returns the stub written at order creation time
func NewPaymentDetail(method, currency string) PaymentDetail {
	return PaymentDetail{Method: method, Currency: currency}
}

// ProductSnapshot freezes the product's display metadata at order time
type ProductSnapshot struct {
	CoverImage   ImageRef   `json:"cover_image"`
	Images       []ImageRef `json:"images"`
	Description  string     `json:"description"`
	Brand        string     `json:"brand"`
	Tags         []string   `json:"tags"`
	ColorOptions []string   `json:"color_options"`
	SizeOptions  []string   `json:"size_options"`
}

// OrderItem is one line of an order, immutable after creation
type OrderItem struct {
	gorm.Model
	OrderID       uint            `json:"order_id" gorm:"index"`
	ProductID     uint            `json:"product_id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     float64         `json:"unit_price"`
	TotalPrice    float64         `json:"total_price"`
	SelectedSize  string          `json:"selected_size,omitempty"`
	SelectedColor string          `json:"selected_color,omitempty"`
	Snapshot      ProductSnapshot `gorm:"serializer:json" json:"product_snapshot"`
}

// Order is one checkout attempt. TotalAmount = ItemsSubtotal +
// ShippingCharge + TaxAmount - Discount, validated at creation only.
type Order struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"index"`
	User   User `json:"user" gorm:"foreignKey:UserID"`

	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`

	ItemsSubtotal  float64 `json:"items_subtotal"`
	ShippingCharge float64 `json:"shipping_charge"`
	TaxAmount      float64 `json:"tax_amount"`
	Discount       float64 `json:"discount"`
	TotalAmount    float64 `json:"total_amount"`

	PaymentDetail PaymentDetail `gorm:"embedded;embeddedPrefix:payment_" json:"payment_detail"`

	Status string `gorm:"index;default:'Order Placed'" json:"status"`
}
