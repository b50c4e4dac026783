package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
	"github.com/navswara/storefront/utils"
)

// recomputeProductRating refreshes a product's average rating and review
// count from its current reviews.
func recomputeProductRating(productID uint) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	if err := config.DB.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&stats).Error; err != nil {
		return err
	}
	return config.DB.Model(&models.Product{}).Where("id = ?", productID).
		Updates(map[string]interface{}{
			"average_rating": stats.Avg,
			"review_count":   stats.Count,
		}).Error
}

// ListReviews returns a product's reviews, newest first
func ListReviews(c *gin.Context) {
	utils.LogDebug("ListReviews called")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("User").Where("product_id = ?", productID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews for product ID: %d: %v", productID, err)
		utils.InternalServerError(c, "Failed to fetch reviews", err.Error())
		return
	}

	utils.Success(c, "Reviews retrieved successfully", gin.H{"reviews": reviews})
}

// AddReview creates or replaces the user's review for a product and
// refreshes the product's rating summary.
func AddReview(c *gin.Context) {
	utils.LogInfo("AddReview called")

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

	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if !utils.IsValidRating(req.Rating) {
		utils.BadRequest(c, "Rating must be between 1 and 5", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var review models.Review
	err = config.DB.Where("product_id = ? AND user_id = ?", productID, user.ID).First(&review).Error
	if err != nil {
		review = models.Review{
			ProductID: uint(productID),
			UserID:    user.ID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		err = config.DB.Create(&review).Error
	} else {
		err = config.DB.Model(&review).Updates(map[string]interface{}{
			"rating":  req.Rating,
			"comment": req.Comment,
		}).Error
	}
	if err != nil {
		utils.LogError("Failed to save review for product ID: %d: %v", productID, err)
		utils.InternalServerError(c, "Failed to save review", err.Error())
		return
	}

	if err := recomputeProductRating(uint(productID)); err != nil {
		utils.LogError("Failed to refresh rating for product ID: %d: %v", productID, err)
	}
	utils.LogInfo("Saved review ID: %d for product ID: %d", review.ID, productID)

	utils.Success(c, "Review saved", gin.H{"review": review})
}

// RemoveReview deletes the user's review for a product
func RemoveReview(c *gin.Context) {
	utils.LogInfo("RemoveReview called")

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

	var review models.Review
	if err := config.DB.Where("product_id = ? AND user_id = ?", productID, user.ID).
		First(&review).Error; err != nil {
		utils.NotFound(c, "Review not found")
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		utils.LogError("Failed to delete review ID: %d: %v", review.ID, err)
		utils.InternalServerError(c, "Failed to delete review", err.Error())
		return
	}

	if err := recomputeProductRating(uint(productID)); err != nil {
		utils.LogError("Failed to refresh rating for product ID: %d: %v", productID, err)
	}

	utils.Success(c, "Review removed", nil)
}
