package controllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/gateway"
	"github.com/navswara/storefront/models"
)

var testDBSeq int64

// setupTest points config at a fresh in-memory database and test
// settings. Each test gets its own database.
func setupTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.MigrateModels(db))
	config.DB = db

	config.App = &config.Config{
		JWTSecret:         "test-secret",
		Currency:          "inr",
		ShippingCharge:    10,
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "rzp_test_secret",
	}
}

type fakeStripe struct {
	session     gateway.CheckoutSession
	status      gateway.SessionStatus
	createErr   error
	retrieveErr error

	lastLineItems  []gateway.LineItem
	lastCurrency   string
	lastSuccessURL string
	lastCancelURL  string
}

func (f *fakeStripe) CreateCheckoutSession(items []gateway.LineItem, currency, successURL, cancelURL string) (*gateway.CheckoutSession, error) {
	f.lastLineItems = items
	f.lastCurrency = currency
	f.lastSuccessURL = successURL
	f.lastCancelURL = cancelURL
	if f.createErr != nil {
		return nil, f.createErr
	}
	session := f.session
	return &session, nil
}

func (f *fakeStripe) RetrieveSession(sessionID string) (*gateway.SessionStatus, error) {
	if f.retrieveErr != nil {
		return nil, f.retrieveErr
	}
	status := f.status
	return &status, nil
}

type fakeRazorpay struct {
	order     gateway.GatewayOrder
	createErr error

	lastAmount   int64
	lastCurrency string
	lastReceipt  string
}

func (f *fakeRazorpay) CreateOrder(amountMinorUnits int64, currency, receipt string) (*gateway.GatewayOrder, error) {
	f.lastAmount = amountMinorUnits
	f.lastCurrency = currency
	f.lastReceipt = receipt
	if f.createErr != nil {
		return nil, f.createErr
	}
	order := f.order
	order.Amount = amountMinorUnits
	order.Currency = currency
	order.Receipt = receipt
	return &order, nil
}

// newTestRouter registers the order workflow routes behind a stub auth
// layer that injects the given user.
func newTestRouter(user models.User) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", user)
	})

	router.POST("/checkout/cod", PlaceOrderCOD)
	router.POST("/checkout/stripe", PlaceOrderStripe)
	router.POST("/checkout/razorpay", PlaceOrderRazorpay)
	router.POST("/payment/stripe/verify", VerifyStripePayment)
	router.POST("/payment/razorpay/verify", VerifyRazorpayPayment)
	router.GET("/orders", ListOrders)
	router.GET("/orders/:id", GetOrderDetails)
	router.GET("/admin/orders", AdminListOrders)
	router.PUT("/admin/orders/:id/status", AdminUpdateOrderStatus)
	return router
}

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func createTestUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "x"}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func createTestProduct(t *testing.T, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Slug:        name,
		Description: "test product",
		Price:       price,
		Category:    "tshirts",
		InStock:     true,
	}
	require.NoError(t, config.DB.Create(&product).Error)
	return product
}

func seedCart(t *testing.T, userID, productID uint, size string, qty int) {
	t.Helper()
	row := models.Cart{UserID: userID, ProductID: productID, Size: size, Quantity: qty}
	require.NoError(t, config.DB.Create(&row).Error)
}

func cartCount(t *testing.T, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, config.DB.Model(&models.Cart{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName:   "Test User",
		Line1:      "12 MG Road",
		City:       "Bengaluru",
		State:      "Karnataka",
		PostalCode: "560001",
		Country:    "India",
	}
}

func fakeSession(id, url string) gateway.CheckoutSession {
	return gateway.CheckoutSession{ID: id, URL: url}
}

func fakeGatewayOrder(id string) gateway.GatewayOrder {
	return gateway.GatewayOrder{ID: id}
}

// signRazorpay recomputes the signature the gateway would send back
func signRazorpay(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
