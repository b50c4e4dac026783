package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navswara/storefront/config"
	"github.com/navswara/storefront/models"
)

func newReviewRouter(user models.User) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", user)
	})
	router.GET("/products/:id/reviews", ListReviews)
	router.POST("/products/:id/reviews", AddReview)
	router.DELETE("/products/:id/reviews", RemoveReview)
	return router
}

func TestAddReviewUpdatesRatingSummary(t *testing.T) {
	setupTest(t)
	alice := createTestUser(t, "alice@example.com")
	bob := createTestUser(t, "bob@example.com")
	product := createTestProduct(t, "rated-tee", 400)

	w, _ := performJSON(t, newReviewRouter(alice), "POST",
		fmt.Sprintf("/products/%d/reviews", product.ID),
		map[string]interface{}{"rating": 5, "comment": "great fit"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = performJSON(t, newReviewRouter(bob), "POST",
		fmt.Sprintf("/products/%d/reviews", product.ID),
		map[string]interface{}{"rating": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, config.DB.First(&updated, product.ID).Error)
	assert.Equal(t, 4.0, updated.AverageRating)
	assert.Equal(t, 2, updated.ReviewCount)
}

func TestAddReviewReplacesOwn(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "review@example.com")
	product := createTestProduct(t, "replace-tee", 400)
	router := newReviewRouter(user)

	performJSON(t, router, "POST", fmt.Sprintf("/products/%d/reviews", product.ID),
		map[string]interface{}{"rating": 2, "comment": "meh"})
	w, _ := performJSON(t, router, "POST", fmt.Sprintf("/products/%d/reviews", product.ID),
		map[string]interface{}{"rating": 4, "comment": "better after wash"})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	config.DB.Model(&models.Review{}).Where("product_id = ?", product.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	var updated models.Product
	require.NoError(t, config.DB.First(&updated, product.ID).Error)
	assert.Equal(t, 4.0, updated.AverageRating)
	assert.Equal(t, 1, updated.ReviewCount)
}

func TestAddReviewRejectsOutOfRangeRating(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "badrating@example.com")
	product := createTestProduct(t, "strict-tee", 400)
	router := newReviewRouter(user)

	w, _ := performJSON(t, router, "POST", fmt.Sprintf("/products/%d/reviews", product.ID),
		map[string]interface{}{"rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = performJSON(t, router, "POST", fmt.Sprintf("/products/%d/reviews", product.ID),
		map[string]interface{}{"rating": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveReviewRecomputesSummary(t *testing.T) {
	setupTest(t)
	alice := createTestUser(t, "alice@example.com")
	bob := createTestUser(t, "bob@example.com")
	product := createTestProduct(t, "shrinking-tee", 400)

	performJSON(t, newReviewRouter(alice), "POST",
		fmt.Sprintf("/products/%d/reviews", product.ID), map[string]interface{}{"rating": 5})
	performJSON(t, newReviewRouter(bob), "POST",
		fmt.Sprintf("/products/%d/reviews", product.ID), map[string]interface{}{"rating": 1})

	w, _ := performJSON(t, newReviewRouter(bob), "DELETE",
		fmt.Sprintf("/products/%d/reviews", product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, config.DB.First(&updated, product.ID).Error)
	assert.Equal(t, 5.0, updated.AverageRating)
	assert.Equal(t, 1, updated.ReviewCount)
}

func TestRemoveReviewNotFound(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, "noreview@example.com")
	product := createTestProduct(t, "bare-tee", 400)
	router := newReviewRouter(user)

	w, _ := performJSON(t, router, "DELETE",
		fmt.Sprintf("/products/%d/reviews", product.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
