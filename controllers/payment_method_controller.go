package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

// GetPaymentMethods lists the user's saved payment method stubs
func GetPaymentMethods(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var methods []models.UserPaymentMethod
	if err := config.DB.Where("user_id = ?", user.ID).Order("id").Find(&methods).Error; err != nil {
		utils.LogError("Failed to fetch payment methods for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch payment methods", err.Error())
		return
	}

	utils.Success(c, "Payment methods retrieved successfully", gin.H{"payment_methods": methods})
}

// AddPaymentMethod saves a payment method stub
func AddPaymentMethod(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var method models.UserPaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	method.ID = 0
	method.UserID = user.ID

	switch method.Method {
	case models.PaymentMethodCOD, models.PaymentMethodStripe,
		models.PaymentMethodRazorpay, models.PaymentMethodCard:
	default:
		utils.BadRequest(c, "Invalid payment method", gin.H{
			"valid_methods": []string{
				models.PaymentMethodCOD,
				models.PaymentMethodStripe,
				models.PaymentMethodRazorpay,
				models.PaymentMethodCard,
			},
		})
		return
	}

	if err := config.DB.Create(&method).Error; err != nil {
		utils.LogError("Failed to save payment method for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save payment method", err.Error())
		return
	}

	utils.Created(c, "Payment method added", gin.H{"payment_method": method})
}

// DeletePaymentMethod removes a saved payment method stub
func DeletePaymentMethod(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	methodID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid payment method ID", nil)
		return
	}

	var method models.UserPaymentMethod
	if err := config.DB.Where("id = ? AND user_id = ?", methodID, user.ID).First(&method).Error; err != nil {
		utils.NotFound(c, "Payment method not found")
		return
	}

	if err := config.DB.Delete(&method).Error; err != nil {
		utils.LogError("Failed to delete payment method ID: %d: %v", method.ID, err)
		utils.InternalServerError(c, "Failed to delete payment method", err.Error())
		return
	}

	utils.Success(c, "Payment method removed", nil)
}
