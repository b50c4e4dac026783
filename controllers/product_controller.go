package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

type productRequest struct {
	Name          string            `json:"name" binding:"required"`
	Description   string            `json:"description" binding:"required"`
	Price         float64           `json:"price" binding:"required"`
	CoverImage    models.ImageRef   `json:"cover_image"`
	Images        []models.ImageRef `json:"images"`
	Category      string            `json:"category" binding:"required"`
	SubCategory   string            `json:"sub_category"`
	Brand         string            `json:"brand"`
	Colors        []string          `json:"colors"`
	Sizes         []string          `json:"sizes"`
	Tags          []string          `json:"tags"`
	BestSeller    bool              `json:"best_seller"`
	InStock       *bool             `json:"in_stock"`
	AverageRating float64           `json:"average_rating"`
}

// AddProduct creates a catalog entry. Admin only.
func AddProduct(c *gin.Context) {
	utils.LogInfo("AddProduct called")

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.CoverImage.URL == "" {
		utils.BadRequest(c, "cover_image is required", nil)
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := models.Product{
		Name:          req.Name,
		Slug:          slug.Make(req.Name),
		Description:   req.Description,
		Price:         req.Price,
		CoverImage:    req.CoverImage,
		Images:        req.Images,
		Category:      req.Category,
		SubCategory:   req.SubCategory,
		Brand:         req.Brand,
		Colors:        req.Colors,
		Sizes:         req.Sizes,
		Tags:          req.Tags,
		BestSeller:    req.BestSeller,
		InStock:       inStock,
		AverageRating: req.AverageRating,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}
	utils.LogInfo("Created product ID: %d", product.ID)

	utils.Success(c, "Product added", gin.H{"product": product})
}

// UpdateProduct patches a catalog entry. Admin only.
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var req struct {
		Name          *string            `json:"name"`
		Description   *string            `json:"description"`
		Price         *float64           `json:"price"`
		CoverImage    *models.ImageRef   `json:"cover_image"`
		Images        *[]models.ImageRef `json:"images"`
		Category      *string            `json:"category"`
		SubCategory   *string            `json:"sub_category"`
		Brand         *string            `json:"brand"`
		Colors        *[]string          `json:"colors"`
		Sizes         *[]string          `json:"sizes"`
		Tags          *[]string          `json:"tags"`
		BestSeller    *bool              `json:"best_seller"`
		InStock       *bool              `json:"in_stock"`
		AverageRating *float64           `json:"average_rating"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
		product.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CoverImage != nil {
		product.CoverImage = *req.CoverImage
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.SubCategory != nil {
		product.SubCategory = *req.SubCategory
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Colors != nil {
		product.Colors = *req.Colors
	}
	if req.Sizes != nil {
		product.Sizes = *req.Sizes
	}
	if req.Tags != nil {
		product.Tags = *req.Tags
	}
	if req.BestSeller != nil {
		product.BestSeller = *req.BestSeller
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.AverageRating != nil {
		product.AverageRating = *req.AverageRating
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.LogError("Failed to update product ID: %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}
	utils.LogInfo("Updated product ID: %d", product.ID)

	utils.Success(c, "Product updated", gin.H{"product": product})
}

// RemoveProduct deletes a catalog entry. Admin only.
func RemoveProduct(c *gin.Context) {
	utils.LogInfo("RemoveProduct called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	if err := config.DB.Delete(&models.Product{}, productID).Error; err != nil {
		utils.LogError("Failed to delete product ID: %d: %v", productID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}
	utils.LogInfo("Deleted product ID: %d", productID)

	utils.Success(c, "Product removed", nil)
}
