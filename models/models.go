package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a storefront customer (or admin)
type User struct {
	gorm.Model
	Name              string    `gorm:"not null" json:"name"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	Password          string    `json:"-"`
	IsAdmin           bool      `json:"is_admin" gorm:"default:false"`
	GoogleID          string    `gorm:"default:null" json:"google_id,omitempty"`
	ResetOTP          string    `json:"-"`
	ResetOTPExpiresAt time.Time `json:"-"`
	LastLoginAt       time.Time `json:"last_login_at"`

	Addresses      []Address           `json:"addresses" gorm:"foreignKey:UserID"`
	PaymentMethods []UserPaymentMethod `json:"payment_methods" gorm:"foreignKey:UserID"`
}

// Address is an entry in a user's address book
type Address struct {
	gorm.Model
	UserID     uint   `json:"user_id"`
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
	IsDefault  bool   `json:"is_default" gorm:"default:false"`
}

// UserPaymentMethod is a saved payment method stub shown at checkout.
// Display data only, never full card numbers.
type UserPaymentMethod struct {
	gorm.Model
	UserID    uint   `json:"user_id"`
	Method    string `json:"method"` // COD, Stripe, Razorpay, Card
	CardBrand string `json:"card_brand,omitempty"`
	CardLast4 string `json:"card_last4,omitempty"`
	ExpMonth  int    `json:"exp_month,omitempty"`
	ExpYear   int    `json:"exp_year,omitempty"`
}

// Cart holds one (product, size) entry of a user's cart
type Cart struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"index"`
	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}
