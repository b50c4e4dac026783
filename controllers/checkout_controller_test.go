package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
)

func placeOrderBody(addr models.ShippingAddress, items []map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"shipping_address": addr,
		"items":            items,
	}
}

func twoShirtItems(productID uint) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"product_id":    productID,
			"quantity":      2,
			"unit_price":    500.0,
			"total_price":   1000.0,
			"selected_size": "M",
		},
	}
}

func TestPlaceOrderCOD(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "cod@example.com")
	product := createTestProduct(t, "classic-tee", 500)
	seedCart(t, user.ID, product.ID, "M", 2)
	router := newTestRouter(user)

	w, resp := performJSON(t, router, "POST", "/checkout/cod",
		placeOrderBody(testAddress(), twoShirtItems(product.ID)))

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	var order models.Order
	require.NoError(t, config.DB.Preload("Items").First(&order).Error)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentDetail.Method)
	assert.Equal(t, "inr", order.PaymentDetail.Currency)
	assert.Empty(t, order.PaymentDetail.TransactionID)

	assert.Equal(t, 1000.0, order.ItemsSubtotal)
	assert.Equal(t, 10.0, order.ShippingCharge)
	assert.Equal(t, 1010.0, order.TotalAmount)
	assert.Equal(t, 0.0, order.TaxAmount)
	assert.Equal(t, 0.0, order.Discount)

	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductID)
	assert.Equal(t, "classic-tee", order.Items[0].Name)
	assert.Equal(t, "M", order.Items[0].SelectedSize)

	// COD clears the cart synchronously
	assert.EqualValues(t, 0, cartCount(t, user.ID))
}

func TestPlaceOrderCODSnapshotFrozen(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "snapshot@example.com")
	product := createTestProduct(t, "graphic-tee", 750)
	product.Brand = "Acme"
	product.Tags = []string{"summer", "cotton"}
	require.NoError(t, config.DB.Save(&product).Error)
	router := newTestRouter(user)

	items := []map[string]interface{}{
		{"product_id": product.ID, "quantity": 1, "unit_price": 750.0, "total_price": 750.0},
	}
	w, _ := performJSON(t, router, "POST", "/checkout/cod", placeOrderBody(testAddress(), items))
	require.Equal(t, http.StatusOK, w.Code)

	// Mutate the product after the order is placed
	require.NoError(t, config.DB.Model(&product).Updates(map[string]interface{}{
		"brand": "Other", "description": "changed",
	}).Error)

	var order models.Order
	require.NoError(t, config.DB.Preload("Items").First(&order).Error)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Acme", order.Items[0].Snapshot.Brand)
	assert.Equal(t, []string{"summer", "cotton"}, order.Items[0].Snapshot.Tags)
}

func TestPlaceOrderMissingAddress(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "noaddr@example.com")
	product := createTestProduct(t, "plain-tee", 300)
	router := newTestRouter(user)

	w, resp := performJSON(t, router, "POST", "/checkout/cod",
		placeOrderBody(models.ShippingAddress{}, twoShirtItems(product.ID)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)

	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "noitems@example.com")
	router := newTestRouter(user)

	w, _ := performJSON(t, router, "POST", "/checkout/cod",
		placeOrderBody(testAddress(), []map[string]interface{}{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "ghost@example.com")
	router := newTestRouter(user)

	items := []map[string]interface{}{
		{"product_id": 9999, "quantity": 1, "unit_price": 100.0, "total_price": 100.0},
	}
	w, _ := performJSON(t, router, "POST", "/checkout/cod", placeOrderBody(testAddress(), items))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestPlaceOrderStripe(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "stripe@example.com")
	product := createTestProduct(t, "premium-tee", 500)
	seedCart(t, user.ID, product.ID, "L", 2)

	stripe := &fakeStripe{session: fakeSession("cs_test_123", "https://checkout.example/cs_test_123")}
	SetGateways(stripe, &fakeRazorpay{})
	router := newTestRouter(user)

	w, resp := performJSON(t, router, "POST", "/checkout/stripe",
		placeOrderBody(testAddress(), twoShirtItems(product.ID)))

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)
	assert.Equal(t, "https://checkout.example/cs_test_123", resp.Data["session_url"])

	var order models.Order
	require.NoError(t, config.DB.First(&order).Error)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, models.PaymentMethodStripe, order.PaymentDetail.Method)
	assert.Equal(t, "cs_test_123", order.PaymentDetail.StripeSessionID)

	// Line items carry minor units plus a flat shipping row
	require.Len(t, stripe.lastLineItems, 2)
	assert.EqualValues(t, 50000, stripe.lastLineItems[0].UnitAmount)
	assert.EqualValues(t, 2, stripe.lastLineItems[0].Quantity)
	assert.Equal(t, "Shipping", stripe.lastLineItems[1].Name)
	assert.EqualValues(t, 1000, stripe.lastLineItems[1].UnitAmount)
	assert.Equal(t, "inr", stripe.lastCurrency)
	assert.Contains(t, stripe.lastSuccessURL, fmt.Sprintf("orderId=%d", order.ID))
	assert.Contains(t, stripe.lastSuccessURL, "session_id={CHECKOUT_SESSION_ID}")

	// Cart survives until verification succeeds
	assert.EqualValues(t, 1, cartCount(t, user.ID))
}

func TestPlaceOrderStripeGatewayFailure(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "stripefail@example.com")
	product := createTestProduct(t, "failing-tee", 500)

	SetGateways(&fakeStripe{createErr: errors.New("gateway down")}, &fakeRazorpay{})
	router := newTestRouter(user)

	w, _ := performJSON(t, router, "POST", "/checkout/stripe",
		placeOrderBody(testAddress(), twoShirtItems(product.ID)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The order was created before the gateway call and stays behind
	var order models.Order
	require.NoError(t, config.DB.First(&order).Error)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Empty(t, order.PaymentDetail.StripeSessionID)
}

func TestPlaceOrderRazorpay(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "razorpay@example.com")
	product := createTestProduct(t, "sport-tee", 500)
	seedCart(t, user.ID, product.ID, "S", 1)

	razorpay := &fakeRazorpay{order: fakeGatewayOrder("order_rzp_123")}
	SetGateways(&fakeStripe{}, razorpay)
	router := newTestRouter(user)

	w, resp := performJSON(t, router, "POST", "/checkout/razorpay",
		placeOrderBody(testAddress(), twoShirtItems(product.ID)))

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)
	assert.Equal(t, "rzp_test_key", resp.Data["key"])

	var order models.Order
	require.NoError(t, config.DB.First(&order).Error)
	assert.Equal(t, models.PaymentMethodRazorpay, order.PaymentDetail.Method)
	assert.Equal(t, "order_rzp_123", order.PaymentDetail.RazorpayOrderID)

	// Total 1010.00 in paise, uppercased currency, receipt = our order id
	assert.EqualValues(t, 101000, razorpay.lastAmount)
	assert.Equal(t, "INR", razorpay.lastCurrency)
	assert.Equal(t, fmt.Sprintf("%d", order.ID), razorpay.lastReceipt)

	// Cart survives until verification succeeds
	assert.EqualValues(t, 1, cartCount(t, user.ID))
}

func TestToMinorUnits(t *testing.T) {
	assert.EqualValues(t, 101000, toMinorUnits(1010))
	assert.EqualValues(t, 101050, toMinorUnits(1010.5))
	assert.EqualValues(t, 10, toMinorUnits(0.1))
	assert.EqualValues(t, 0, toMinorUnits(0))
	// Float noise rounds to the nearest paisa
	assert.EqualValues(t, 1010, toMinorUnits(10.1))
}
