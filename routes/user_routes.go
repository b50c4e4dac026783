package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/controllers"
	"github.com/navswara/storefront/middleware"
)

// initUserRoutes initializes all user-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Auth
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/verify-reset-otp", controllers.VerifyResetOTP)
	router.POST("/reset-password", controllers.ResetPassword)

	// Catalog
	router.GET("/products", controllers.ListProducts)
	router.GET("/products/:id", controllers.GetProductDetails)
	router.GET("/products/slug/:slug", controllers.GetProductBySlug)
	router.GET("/products/:id/reviews", controllers.ListReviews)
	router.GET("/sections", controllers.ListSections)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", controllers.GetMe)

		// Address book
		protected.GET("/addresses", controllers.GetAddresses)
		protected.POST("/addresses", controllers.AddAddress)
		protected.PUT("/addresses/:id", controllers.UpdateAddress)
		protected.DELETE("/addresses/:id", controllers.DeleteAddress)

		// Saved payment methods
		protected.GET("/payment-methods", controllers.GetPaymentMethods)
		protected.POST("/payment-methods", controllers.AddPaymentMethod)
		protected.DELETE("/payment-methods/:id", controllers.DeletePaymentMethod)

		// Cart operations
		protected.GET("/cart", controllers.GetCart)
		protected.POST("/cart/add", controllers.AddToCart)
		protected.PUT("/cart/update", controllers.UpdateCart)
		protected.DELETE("/cart/remove/:id", controllers.RemoveFromCart)
		protected.DELETE("/cart/clear", controllers.ClearCart)

		// Checkout
		protected.POST("/checkout/cod", controllers.PlaceOrderCOD)
		protected.POST("/checkout/stripe", controllers.PlaceOrderStripe)
		protected.POST("/checkout/razorpay", controllers.PlaceOrderRazorpay)

		// Payment verification
		protected.POST("/payment/stripe/verify", controllers.VerifyStripePayment)
		protected.POST("/payment/razorpay/verify", controllers.VerifyRazorpayPayment)

		// Orders
		protected.GET("/orders", controllers.ListOrders)
		protected.GET("/orders/:id", controllers.GetOrderDetails)
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)

		// Reviews
		protected.POST("/products/:id/reviews", controllers.AddReview)
		protected.DELETE("/products/:id/reviews", controllers.RemoveReview)
	}
}
