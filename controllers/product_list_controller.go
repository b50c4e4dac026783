package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

var productSortColumns = map[string]string{
	"price":      "price",
	"name":       "name",
	"rating":     "average_rating",
	"created_at": "created_at",
}

// applyProductFilters narrows a product query from list query params.
// Tags and colors are stored JSON-serialized, so membership is matched
// against the serialized form.
func applyProductFilters(c *gin.Context, query *gorm.DB) *gorm.DB {
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if subCategory := c.Query("sub_category"); subCategory != "" {
		query = query.Where("sub_category = ?", subCategory)
	}
	if brand := c.Query("brand"); brand != "" {
		query = query.Where("brand = ?", brand)
	}
	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			query = query.Where("tags LIKE ?", fmt.Sprintf("%%%q%%", tag))
		}
	}
	if colors := c.Query("colors"); colors != "" {
		for _, color := range strings.Split(colors, ",") {
			color = strings.TrimSpace(color)
			if color == "" {
				continue
			}
			query = query.Where("colors LIKE ?", fmt.Sprintf("%%%q%%", color))
		}
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("price >= ?", v)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", v)
		}
	}
	if inStock := c.Query("in_stock"); inStock != "" {
		query = query.Where("in_stock = ?", inStock == "true")
	}
	if bestSeller := c.Query("best_seller"); bestSeller != "" {
		query = query.Where("best_seller = ?", bestSeller == "true")
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return query
}

// ListProducts returns the filtered, sorted, paginated catalog
func ListProducts(c *gin.Context) {
	utils.LogDebug("ListProducts called")

	pagination := utils.NewPagination(c)

	query := applyProductFilters(c, config.DB.Model(&models.Product{}))

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	sortBy := c.DefaultQuery("sort_by", "created_at")
	column, ok := productSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(c.DefaultQuery("order", "desc"), "asc") {
		direction = "ASC"
	}

	var products []models.Product
	if err := query.Order(column + " " + direction).
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.Success(c, "Products retrieved successfully", gin.H{
		"products": products,
		"pagination": gin.H{
			"page":  pagination.Page,
			"limit": pagination.Limit,
			"total": pagination.Total,
			"pages": pagination.Pages(),
		},
	})
}
