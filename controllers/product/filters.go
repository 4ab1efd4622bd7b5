package productcontroller

import (
	"net/http"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// GET /filters
func GetFilters(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"filters":  s.Filters(),
			"products": s.FilteredProducts(nil),
		})
	}
}

// PUT /filters
// Replaces the shopper's stored facet selections.
func SetFilters(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters models.FilterState
		if err := c.ShouldBindJSON(&filters); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		s.SetFilters(filters)
		c.JSON(http.StatusOK, gin.H{"filters": s.Filters(), "products": s.FilteredProducts(nil)})
	}
}

// DELETE /filters
func ClearFilters(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ClearFilters()
		c.JSON(http.StatusOK, gin.H{"filters": s.Filters()})
	}
}

// GET /recently-viewed
func GetRecentlyViewed(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"products": s.RecentlyViewedProducts()})
	}
}

// POST /recently-viewed/:product_id
// Explicit view recording for surfaces that render products without loading
// the detail endpoint.
func RecordRecentlyViewed(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.AddToRecentlyViewed(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"recentlyViewed": s.RecentlyViewed()})
	}
}
