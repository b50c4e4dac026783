package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

// ListOrders lists the logged-in user's orders, newest first
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var orders []models.Order
	if err := config.DB.Preload("Items").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d orders for user ID: %d", len(orders), user.ID)

	utils.Success(c, "Orders retrieved successfully", gin.H{"orders": orders})
}

// GetOrderDetails returns one of the user's orders with its items
func GetOrderDetails(c *gin.Context) {
	utils.LogInfo("GetOrderDetails called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID format: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, user.ID).
		First(&order).Error; err != nil {
		utils.LogError("Order not found - Order ID: %d, User ID: %d: %v", orderID, user.ID, err)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order details retrieved successfully", gin.H{
		"order": order,
		"totals": gin.H{
			"items_subtotal":  fmt.Sprintf("%.2f", order.ItemsSubtotal),
			"shipping_charge": fmt.Sprintf("%.2f", order.ShippingCharge),
			"tax_amount":      fmt.Sprintf("%.2f", order.TaxAmount),
			"discount":        fmt.Sprintf("%.2f", order.Discount),
			"total_amount":    fmt.Sprintf("%.2f", order.TotalAmount),
		},
	})
}
