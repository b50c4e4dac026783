package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

const relatedProductLimit = 10

// GetProductDetails returns a single product with related products
// sharing at least one tag.
func GetProductDetails(c *gin.Context) {
	utils.LogDebug("GetProductDetails called")

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

	related := relatedProducts(&product)

	utils.Success(c, "Product retrieved successfully", gin.H{
		"product": product,
		"related": related,
	})
}

// GetProductBySlug resolves a product by its URL slug
func GetProductBySlug(c *gin.Context) {
	utils.LogDebug("GetProductBySlug called")

	var product models.Product
	if err := config.DB.Where("slug = ?", c.Param("slug")).First(&product).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	related := relatedProducts(&product)

	utils.Success(c, "Product retrieved successfully", gin.H{
		"product": product,
		"related": related,
	})
}

// relatedProducts finds other products sharing a tag with the given one,
// falling back to same-category items when it has no tags.
func relatedProducts(product *models.Product) []models.Product {
	query := config.DB.Model(&models.Product{}).Where("id <> ?", product.ID)

	if len(product.Tags) > 0 {
		tagQuery := config.DB
		for _, tag := range product.Tags {
			tagQuery = tagQuery.Or("tags LIKE ?", fmt.Sprintf("%%%q%%", tag))
		}
		query = query.Where(tagQuery)
	} else {
		query = query.Where("category = ?", product.Category)
	}

	var related []models.Product
	if err := query.Limit(relatedProductLimit).Find(&related).Error; err != nil {
		utils.LogError("Failed to fetch related products for product ID: %d: %v", product.ID, err)
		return []models.Product{}
	}
	return related
}
