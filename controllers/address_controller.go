package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

// GetAddresses lists the user's address book
func GetAddresses(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var addresses []models.Address
	if err := config.DB.Where("user_id = ?", user.ID).Order("id").Find(&addresses).Error; err != nil {
		utils.LogError("Failed to fetch addresses for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch addresses", err.Error())
		return
	}

	utils.Success(c, "Addresses retrieved successfully", gin.H{"addresses": addresses})
}

// AddAddress appends an address to the user's address book
func AddAddress(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	address.ID = 0
	address.UserID = user.ID

	if address.FullName == "" || address.Line1 == "" || address.City == "" ||
		address.State == "" || address.PostalCode == "" || address.Country == "" {
		utils.BadRequest(c, "Missing required address fields", nil)
		return
	}

	if address.IsDefault {
		config.DB.Model(&models.Address{}).Where("user_id = ?", user.ID).Update("is_default", false)
	}

	if err := config.DB.Create(&address).Error; err != nil {
		utils.LogError("Failed to create address for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create address", err.Error())
		return
	}
	utils.LogInfo("Created address ID: %d for user ID: %d", address.ID, user.ID)

	utils.Created(c, "Address added", gin.H{"address": address})
}

// UpdateAddress updates one of the user's addresses
func UpdateAddress(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid address ID", nil)
		return
	}

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, user.ID).First(&address).Error; err != nil {
		utils.NotFound(c, "Address not found")
		return
	}

	var req models.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	req.ID = address.ID
	req.UserID = user.ID
	req.CreatedAt = address.CreatedAt

	if req.IsDefault && !address.IsDefault {
		config.DB.Model(&models.Address{}).Where("user_id = ?", user.ID).Update("is_default", false)
	}

	if err := config.DB.Save(&req).Error; err != nil {
		utils.LogError("Failed to update address ID: %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to update address", err.Error())
		return
	}

	utils.Success(c, "Address updated", gin.H{"address": req})
}

// DeleteAddress removes one of the user's addresses
func DeleteAddress(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	addressID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid address ID", nil)
		return
	}

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", addressID, user.ID).First(&address).Error; err != nil {
		utils.NotFound(c, "Address not found")
		return
	}

	if err := config.DB.Delete(&address).Error; err != nil {
		utils.LogError("Failed to delete address ID: %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to delete address", err.Error())
		return
	}
	utils.LogInfo("Deleted address ID: %d for user ID: %d", address.ID, user.ID)

	utils.Success(c, "Address removed", nil)
}
