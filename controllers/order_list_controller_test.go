package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navswara/storefront/models"
)

func TestListOrdersOwnOnlyNewestFirst(t *testing.T) {
	setupTest(t)
	alice := createTestUser(t, "alice@example.com")
	bob := createTestUser(t, "bob@example.com")

	older := seedOrder(t, alice.ID, models.OrderStatusPlaced, time.Now().Add(-3*time.Hour))
	newer := seedOrder(t, alice.ID, models.OrderStatusProcessing, time.Now().Add(-1*time.Hour))
	seedOrder(t, bob.ID, models.OrderStatusPlaced, time.Now().Add(-2*time.Hour))

	router := newTestRouter(alice)
	w, resp := performJSON(t, router, "GET", "/orders", nil)

	require.Equal(t, http.StatusOK, w.Code)
	orders := resp.Data["orders"].([]interface{})
	require.Len(t, orders, 2)
	assert.EqualValues(t, newer.ID, orders[0].(map[string]interface{})["ID"])
	assert.EqualValues(t, older.ID, orders[1].(map[string]interface{})["ID"])
}

func TestGetOrderDetails(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "details@example.com")
	order := seedOrder(t, user.ID, models.OrderStatusPlaced, time.Now())

	router := newTestRouter(user)
	w, resp := performJSON(t, router, "GET", fmt.Sprintf("/orders/%d", order.ID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	totals := resp.Data["totals"].(map[string]interface{})
	assert.Equal(t, "500.00", totals["items_subtotal"])
	assert.Equal(t, "10.00", totals["shipping_charge"])
	assert.Equal(t, "510.00", totals["total_amount"])
}

func TestGetOrderDetailsScopedToOwner(t *testing.T) {
	setupTest(t)
	alice := createTestUser(t, "alice@example.com")
	bob := createTestUser(t, "bob@example.com")
	order := seedOrder(t, alice.ID, models.OrderStatusPlaced, time.Now())

	// Bob cannot read Alice's order
	router := newTestRouter(bob)
	w, _ := performJSON(t, router, "GET", fmt.Sprintf("/orders/%d", order.ID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
