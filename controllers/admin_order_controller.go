package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

// AdminListOrders lists all orders across users, paginated
func AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		utils.LogDebug("Filtering by status: %s", status)
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to count orders", err.Error())
		return
	}

	var orders []models.Order
	if err := query.Preload("Items").Preload("User").
		Order("created_at desc").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d orders", len(orders))

	utils.Success(c, "Orders retrieved successfully", gin.H{
		"orders": orders,
		"pagination": gin.H{
			"total":       pagination.Total,
			"page":        pagination.Page,
			"per_page":    pagination.Limit,
			"total_pages": pagination.Pages(),
		},
	})
}

// AdminUpdateOrderStatus sets an order's status to any of the known
// values. There is no transition-graph check; any status can be set
// from any other.
func AdminUpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("AdminUpdateOrderStatus called")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.LogError("Invalid order ID: %v", err)
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		utils.LogError("Invalid status in request: %v", err)
		utils.BadRequest(c, "Status is required", nil)
		return
	}

	status := ""
	for _, s := range models.ValidOrderStatuses {
		if strings.EqualFold(s, req.Status) {
			status = s
			break
		}
	}
	if status == "" {
		utils.LogError("Invalid status requested: %s", req.Status)
		utils.BadRequest(c, "Invalid status", gin.H{
			"valid_statuses": models.ValidOrderStatuses,
		})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}

	if err := config.DB.Model(&order).Update("status", status).Error; err != nil {
		utils.LogError("Failed to update order status: %v", err)
		utils.InternalServerError(c, "Failed to update order status", err.Error())
		return
	}
	utils.LogInfo("Updated order %d status to %s", orderID, status)

	var updated models.Order
	if err := config.DB.Preload("Items").First(&updated, orderID).Error; err != nil {
		utils.LogError("Failed to reload order: %v", err)
		utils.InternalServerError(c, "Failed to reload order", err.Error())
		return
	}

	utils.Success(c, "Status updated", gin.H{"order": updated})
}
