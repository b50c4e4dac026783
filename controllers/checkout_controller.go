package controllers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/gateway"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

var (
	stripeGateway   gateway.Stripe
	razorpayGateway gateway.Razorpay
)

// InitGateways wires the live SDK adapters from configuration
func InitGateways(cfg *config.Config) {
	stripeGateway = gateway.NewStripeClient(cfg.StripeSecretKey)
	razorpayGateway = gateway.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
}

// SetGateways swaps the gateway adapters. Used by tests.
func SetGateways(s gateway.Stripe, r gateway.Razorpay) {
	stripeGateway = s
	razorpayGateway = r
}

type orderItemRequest struct {
	ProductID     uint    `json:"product_id" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
}

type placeOrderRequest struct {
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	Items           []orderItemRequest     `json:"items"`
}

// buildOrderItems resolves every requested product and freezes its
// display metadata onto the line items, preserving input order. Any
// unknown product fails the whole build; nothing is persisted here so
// the failure is atomic from the caller's perspective.
func buildOrderItems(items []orderItemRequest) ([]models.OrderItem, error) {
	result := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		var prod models.Product
		if err := config.DB.First(&prod, item.ProductID).Error; err != nil {
			return nil, utils.NotFoundError(fmt.Sprintf("Product %d not found", item.ProductID), err)
		}

		result = append(result, models.OrderItem{
			ProductID:     prod.ID,
			Name:          prod.Name,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    item.TotalPrice,
			SelectedSize:  item.SelectedSize,
			SelectedColor: item.SelectedColor,
			Snapshot: models.ProductSnapshot{
				CoverImage:   prod.CoverImage,
				Images:       prod.Images,
				Description:  prod.Description,
				Brand:        prod.Brand,
				Tags:         prod.Tags,
				ColorOptions: prod.Colors,
				SizeOptions:  prod.Sizes,
			},
		})
	}
	return result, nil
}

// createOrder validates the request, builds the line items and persists
// a new order with the given payment method stub. Totals: subtotal is
// the sum of line totals, shipping is the configured flat charge, tax
// and discount are zero.
func createOrder(userID uint, req placeOrderRequest, method string) (*models.Order, error) {
	if req.ShippingAddress.Empty() || len(req.Items) == 0 {
		return nil, utils.BadRequestError("Missing address or items", nil)
	}

	orderItems, err := buildOrderItems(req.Items)
	if err != nil {
		return nil, err
	}

	var itemsSubtotal float64
	for _, item := range orderItems {
		itemsSubtotal += item.TotalPrice
	}
	shippingCharge := config.App.ShippingCharge

	order := models.Order{
		UserID:          userID,
		Items:           orderItems,
		ShippingAddress: req.ShippingAddress,
		ItemsSubtotal:   itemsSubtotal,
		ShippingCharge:  shippingCharge,
		TaxAmount:       0,
		Discount:        0,
		TotalAmount:     itemsSubtotal + shippingCharge,
		PaymentDetail:   models.NewPaymentDetail(method, config.App.Currency),
		Status:          models.OrderStatusPlaced,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		return nil, err
	}
	utils.LogInfo("Created order ID: %d for user ID: %d, method: %s, total: %.2f",
		order.ID, userID, method, order.TotalAmount)

	return &order, nil
}

// clearCart removes every cart row of the user. Idempotent.
func clearCart(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.Cart{}).Error
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case utils.IsNotFoundError(err):
		utils.NotFound(c, err.Error())
	case utils.IsBadRequestError(err):
		utils.BadRequest(c, err.Error(), nil)
	default:
		utils.InternalServerError(c, "Failed to place order", err.Error())
	}
}

// PlaceOrderCOD places a cash-on-delivery order. The cart is cleared
// and confirmation returned synchronously; COD orders never go through
// a verification step.
func PlaceOrderCOD(c *gin.Context) {
	utils.LogInfo("PlaceOrderCOD called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	order, err := createOrder(user.ID, req, models.PaymentMethodCOD)
	if err != nil {
		utils.LogError("Failed to place COD order for user ID: %d: %v", user.ID, err)
		respondOrderError(c, err)
		return
	}

	if err := clearCart(config.DB, user.ID); err != nil {
		utils.LogError("Failed to clear cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", err.Error())
		return
	}
	utils.LogInfo("Cleared cart for user ID: %d", user.ID)

	utils.Success(c, "Order placed (COD)", gin.H{
		"order_id": order.ID,
	})
}

// PlaceOrderStripe creates the order first so it has a stable id, then
// opens a hosted checkout session referencing it. The cart is left
// untouched until verification succeeds.
func PlaceOrderStripe(c *gin.Context) {
	utils.LogInfo("PlaceOrderStripe called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	origin := c.GetHeader("Origin")

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	order, err := createOrder(user.ID, req, models.PaymentMethodStripe)
	if err != nil {
		utils.LogError("Failed to place Stripe order for user ID: %d: %v", user.ID, err)
		respondOrderError(c, err)
		return
	}

	lineItems := make([]gateway.LineItem, 0, len(order.Items)+1)
	for _, item := range order.Items {
		lineItems = append(lineItems, gateway.LineItem{
			Name:       item.Name,
			UnitAmount: toMinorUnits(item.UnitPrice),
			Quantity:   int64(item.Quantity),
		})
	}
	lineItems = append(lineItems, gateway.LineItem{
		Name:       "Shipping",
		UnitAmount: toMinorUnits(order.ShippingCharge),
		Quantity:   1,
	})

	successURL := fmt.Sprintf("%s/verify?orderId=%d&session_id={CHECKOUT_SESSION_ID}", origin, order.ID)
	cancelURL := origin + "/cart"

	session, err := stripeGateway.CreateCheckoutSession(lineItems, config.App.Currency, successURL, cancelURL)
	if err != nil {
		// The order stays behind as "Order Placed" with no session id.
		utils.LogError("Failed to create Stripe session for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to create checkout session", err.Error())
		return
	}

	if err := config.DB.Model(order).Update("payment_stripe_session_id", session.ID).Error; err != nil {
		utils.LogError("Failed to save session id for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", err.Error())
		return
	}
	utils.LogInfo("Created Stripe session %s for order ID: %d", session.ID, order.ID)

	utils.Success(c, "Please proceed to payment", gin.H{
		"order_id":    order.ID,
		"session_url": session.URL,
	})
}

// PlaceOrderRazorpay creates the order first, then a gateway order for
// the full total so the client can open the payment widget. The cart is
// left untouched until verification succeeds.
func PlaceOrderRazorpay(c *gin.Context) {
	utils.LogInfo("PlaceOrderRazorpay called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	order, err := createOrder(user.ID, req, models.PaymentMethodRazorpay)
	if err != nil {
		utils.LogError("Failed to place Razorpay order for user ID: %d: %v", user.ID, err)
		respondOrderError(c, err)
		return
	}

	receipt := strconv.FormatUint(uint64(order.ID), 10)
	gatewayOrder, err := razorpayGateway.CreateOrder(
		toMinorUnits(order.TotalAmount),
		strings.ToUpper(config.App.Currency),
		receipt,
	)
	if err != nil {
		// The order stays behind as "Order Placed" with no gateway id.
		utils.LogError("Failed to create Razorpay order for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to create Razorpay order", err.Error())
		return
	}

	if err := config.DB.Model(order).Update("payment_razorpay_order_id", gatewayOrder.ID).Error; err != nil {
		utils.LogError("Failed to save gateway order id for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", err.Error())
		return
	}
	utils.LogInfo("Created Razorpay order %s for order ID: %d", gatewayOrder.ID, order.ID)

	utils.Success(c, "Please proceed to payment", gin.H{
		"order_id": order.ID,
		"order":    gatewayOrder,
		"key":      config.App.RazorpayKeyID,
	})
}

// toMinorUnits converts a major-unit amount to the smallest currency
// denomination the gateways expect.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
