package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
)

func seedOrder(t *testing.T, userID uint, status string, createdAt time.Time) models.Order {
	t.Helper()
	order := models.Order{
		UserID:          userID,
		ShippingAddress: testAddress(),
		ItemsSubtotal:   500,
		ShippingCharge:  10,
		TotalAmount:     510,
		PaymentDetail:   models.NewPaymentDetail(models.PaymentMethodCOD, "inr"),
		Status:          status,
	}
	require.NoError(t, config.DB.Create(&order).Error)
	require.NoError(t, config.DB.Model(&order).Update("created_at", createdAt).Error)
	return order
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	setupTest(t)
	admin := createTestUser(t, "admin@example.com")
	customer := createTestUser(t, "customer@example.com")
	order := seedOrder(t, customer.ID, models.OrderStatusPlaced, time.Now())
	router := newTestRouter(admin)

	w, resp := performJSON(t, router, "PUT",
		fmt.Sprintf("/admin/orders/%d/status", order.ID),
		map[string]interface{}{"status": "Shipped"})

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	var updated models.Order
	require.NoError(t, config.DB.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)
}

func TestAdminUpdateOrderStatusCaseInsensitive(t *testing.T) {
	setupTest(t)
	admin := createTestUser(t, "admin@example.com")
	customer := createTestUser(t, "customer@example.com")
	order := seedOrder(t, customer.ID, models.OrderStatusProcessing, time.Now())
	router := newTestRouter(admin)

	w, _ := performJSON(t, router, "PUT",
		fmt.Sprintf("/admin/orders/%d/status", order.ID),
		map[string]interface{}{"status": "delivered"})

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	require.NoError(t, config.DB.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
}

func TestAdminUpdateOrderStatusNoTransitionCheck(t *testing.T) {
	setupTest(t)
	admin := createTestUser(t, "admin@example.com")
	customer := createTestUser(t, "customer@example.com")
	order := seedOrder(t, customer.ID, models.OrderStatusDelivered, time.Now())
	router := newTestRouter(admin)

	// Any known status can be set from any other, even backwards
	w, _ := performJSON(t, router, "PUT",
		fmt.Sprintf("/admin/orders/%d/status", order.ID),
		map[string]interface{}{"status": models.OrderStatusPlaced})

	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	require.NoError(t, config.DB.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusPlaced, updated.Status)
}

func TestAdminUpdateOrderStatusInvalid(t *testing.T) {
	setupTest(t)
	admin := createTestUser(t, "admin@example.com")
	customer := createTestUser(t, "customer@example.com")
	order := seedOrder(t, customer.ID, models.OrderStatusPlaced, time.Now())
	router := newTestRouter(admin)

	w, resp := performJSON(t, router, "PUT",
		fmt.Sprintf("/admin/orders/%d/status", order.ID),
		map[string]interface{}{"status": "Teleported"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)

	var updated models.Order
	require.NoError(t, config.DB.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusPlaced, updated.Status)
}

func TestAdminUpdateOrderStatusUnknownOrder(t *testing.T) {
	setupTest(t)
	admin := createTestUser(t, "admin@example.com")
	router := newTestRouter(admin)

	w, _ := performJSON(t, router, "PUT", "/admin/orders/9999/status",
		map[string]interface{}{"status": "Shipped"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminListOrders(t *testing.T) {
	setupTest(t)
	admin := createTestUser(t, "admin@example.com")
	alice := createTestUser(t, "alice@example.com")
	bob := createTestUser(t, "bob@example.com")

	older := seedOrder(t, alice.ID, models.OrderStatusPlaced, time.Now().Add(-2*time.Hour))
	newer := seedOrder(t, bob.ID, models.OrderStatusProcessing, time.Now().Add(-1*time.Hour))
	router := newTestRouter(admin)

	w, resp := performJSON(t, router, "GET", "/admin/orders", nil)

	require.Equal(t, http.StatusOK, w.Code)
	orders := resp.Data["orders"].([]interface{})
	require.Len(t, orders, 2)

	// Newest first, across all users
	first := orders[0].(map[string]interface{})
	second := orders[1].(map[string]interface{})
	assert.EqualValues(t, newer.ID, first["ID"])
	assert.EqualValues(t, older.ID, second["ID"])
}

func TestAdminListOrdersStatusFilter(t *testing.T) {
	setupTest(t)
	admin := createTestUser(t, "admin@example.com")
	customer := createTestUser(t, "customer@example.com")

	seedOrder(t, customer.ID, models.OrderStatusPlaced, time.Now().Add(-2*time.Hour))
	shipped := seedOrder(t, customer.ID, models.OrderStatusShipped, time.Now().Add(-1*time.Hour))
	router := newTestRouter(admin)

	w, resp := performJSON(t, router, "GET", "/admin/orders?status=Shipped", nil)

	require.Equal(t, http.StatusOK, w.Code)
	orders := resp.Data["orders"].([]interface{})
	require.Len(t, orders, 1)
	assert.EqualValues(t, shipped.ID, orders[0].(map[string]interface{})["ID"])
}
