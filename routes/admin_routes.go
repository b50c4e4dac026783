package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/controllers"
	"github.com/navswara/storefront/middleware"
)

// initAdminRoutes initializes all admin routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		// Catalog management
		admin.POST("/products", controllers.AddProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.RemoveProduct)

		// Landing page sections
		admin.POST("/sections", controllers.UpsertSection)
		admin.GET("/sections", controllers.AdminListSections)
		admin.DELETE("/sections/:id", controllers.DeleteSection)

		// Order management
		admin.GET("/orders", controllers.AdminListOrders)
		admin.PUT("/orders/:id/status", controllers.AdminUpdateOrderStatus)

		// Reports
		admin.GET("/reports/sales/excel", controllers.DownloadSalesReportExcel)
	}
}
