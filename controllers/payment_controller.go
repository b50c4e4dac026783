package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/gateway"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

// VerifyStripePayment re-fetches the checkout session and, if paid,
// moves the order to Processing and clears the cart. An unpaid session
// is reported as a failure without touching the order.
func VerifyStripePayment(c *gin.Context) {
	utils.LogInfo("VerifyStripePayment called")

	var req struct {
		OrderID   uint   `json:"order_id" binding:"required"`
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		utils.LogError("Order not found for ID: %d: %v", req.OrderID, err)
		utils.NotFound(c, "Order not found")
		return
	}

	session, err := stripeGateway.RetrieveSession(req.SessionID)
	if err != nil {
		utils.LogError("Failed to retrieve Stripe session %s: %v", req.SessionID, err)
		utils.InternalServerError(c, "Failed to retrieve checkout session", err.Error())
		return
	}

	if session.PaymentStatus != gateway.PaidStatus {
		utils.LogInfo("Stripe session %s not paid for order ID: %d (status: %s)",
			req.SessionID, order.ID, session.PaymentStatus)
		utils.BadRequest(c, "Payment not completed", gin.H{"confirmed": false})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for order ID: %d: %v", order.ID, tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Model(&order).Updates(map[string]interface{}{
		"status":                           models.OrderStatusProcessing,
		"payment_stripe_payment_intent_id": session.PaymentIntentID,
		"payment_transaction_id":           session.PaymentIntentID,
	}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", err.Error())
		return
	}

	if err := clearCart(tx, order.UserID); err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear cart for user ID: %d: %v", order.UserID, err)
		utils.InternalServerError(c, "Failed to clear cart", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to commit transaction", err.Error())
		return
	}
	utils.LogInfo("Payment confirmed for order ID: %d", order.ID)

	utils.Success(c, "Payment confirmed", gin.H{"confirmed": true})
}

// VerifyRazorpayPayment recomputes the payment signature and, on a
// match, moves the order to Processing and clears the cart. A mismatch
// is a validation failure and leaves the order untouched.
func VerifyRazorpayPayment(c *gin.Context) {
	utils.LogInfo("VerifyRazorpayPayment called")

	var req struct {
		OrderID           uint   `json:"order_id" binding:"required"`
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		utils.LogError("Order not found for ID: %d: %v", req.OrderID, err)
		utils.NotFound(c, "Order not found")
		return
	}

	if !gateway.VerifyRazorpaySignature(
		req.RazorpayOrderID,
		req.RazorpayPaymentID,
		req.RazorpaySignature,
		config.App.RazorpayKeySecret,
	) {
		utils.LogError("Signature mismatch for order ID: %d", order.ID)
		utils.BadRequest(c, "Invalid signature", gin.H{"confirmed": false})
		return
	}
	utils.LogInfo("Payment signature verified for order ID: %d", order.ID)

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for order ID: %d: %v", order.ID, tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Model(&order).Updates(map[string]interface{}{
		"status":                      models.OrderStatusProcessing,
		"payment_razorpay_payment_id": req.RazorpayPaymentID,
		"payment_razorpay_signature":  req.RazorpaySignature,
		"payment_transaction_id":      req.RazorpayPaymentID,
	}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", err.Error())
		return
	}

	if err := clearCart(tx, order.UserID); err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear cart for user ID: %d: %v", order.UserID, err)
		utils.InternalServerError(c, "Failed to clear cart", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction for order ID: %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to commit transaction", err.Error())
		return
	}
	utils.LogInfo("Payment confirmed for order ID: %d", order.ID)

	utils.Success(c, "Payment successful", gin.H{"confirmed": true})
}
