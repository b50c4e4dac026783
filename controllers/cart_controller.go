package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

type cartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// cartPayload groups a user's cart rows as productId -> size -> quantity
func cartPayload(rows []models.Cart) map[string]map[string]int {
	items := make(map[string]map[string]int)
	for _, row := range rows {
		key := strconv.FormatUint(uint64(row.ProductID), 10)
		if items[key] == nil {
			items[key] = make(map[string]int)
		}
		items[key][row.Size] = row.Quantity
	}
	return items
}

// GetCart returns the user's cart grouped by product and size
func GetCart(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var rows []models.Cart
	if err := config.DB.Where("user_id = ?", user.ID).Find(&rows).Error; err != nil {
		utils.LogError("Failed to fetch cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch cart", err.Error())
		return
	}

	utils.Success(c, "Cart retrieved successfully", gin.H{"cart": cartPayload(rows)})
}

// AddToCart increments the quantity for a product/size pair by one,
// creating the row on first add.
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var row models.Cart
	err := config.DB.Where("user_id = ? AND product_id = ? AND size = ?",
		user.ID, req.ProductID, req.Size).First(&row).Error
	if err != nil {
		row = models.Cart{
			UserID:    user.ID,
			ProductID: req.ProductID,
			Size:      req.Size,
			Quantity:  1,
		}
		err = config.DB.Create(&row).Error
	} else {
		err = config.DB.Model(&row).Update("quantity", row.Quantity+1).Error
	}
	if err != nil {
		utils.LogError("Failed to add to cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to add to cart", err.Error())
		return
	}
	utils.LogInfo("Added product ID: %d (size %q) to cart for user ID: %d", req.ProductID, req.Size, user.ID)

	utils.Success(c, "Added to cart", nil)
}

// UpdateCart sets the quantity for a product/size pair. Zero removes
// the row.
func UpdateCart(c *gin.Context) {
	utils.LogInfo("UpdateCart called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Quantity < 0 {
		utils.BadRequest(c, "Quantity cannot be negative", nil)
		return
	}

	scope := config.DB.Where("user_id = ? AND product_id = ? AND size = ?",
		user.ID, req.ProductID, req.Size)

	if req.Quantity == 0 {
		if err := scope.Delete(&models.Cart{}).Error; err != nil {
			utils.LogError("Failed to remove cart row for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to update cart", err.Error())
			return
		}
		utils.Success(c, "Removed from cart", nil)
		return
	}

	var row models.Cart
	if err := scope.First(&row).Error; err != nil {
		row = models.Cart{
			UserID:    user.ID,
			ProductID: req.ProductID,
			Size:      req.Size,
			Quantity:  req.Quantity,
		}
		if err := config.DB.Create(&row).Error; err != nil {
			utils.LogError("Failed to create cart row for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to update cart", err.Error())
			return
		}
	} else if err := config.DB.Model(&row).Update("quantity", req.Quantity).Error; err != nil {
		utils.LogError("Failed to update cart row for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update cart", err.Error())
		return
	}

	utils.Success(c, "Cart updated", nil)
}

// RemoveFromCart drops every size row of a product from the cart
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	if err := config.DB.Where("user_id = ? AND product_id = ?", user.ID, productID).
		Delete(&models.Cart{}).Error; err != nil {
		utils.LogError("Failed to remove product ID: %d from cart for user ID: %d: %v", productID, user.ID, err)
		utils.InternalServerError(c, "Failed to update cart", err.Error())
		return
	}

	utils.Success(c, "Removed from cart", nil)
}

// ClearCart empties the user's cart
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	if err := clearCart(config.DB, user.ID); err != nil {
		utils.LogError("Failed to clear cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", err.Error())
		return
	}

	utils.Success(c, "Cart cleared", nil)
}
