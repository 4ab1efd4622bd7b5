package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// GET /products/:id
// Fetching a product detail also records it in the recently-viewed history,
// unless the caller opts out with ?record_view=false.
func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		product, ok := s.ProductByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if c.DefaultQuery("record_view", "true") != "false" {
			s.AddToRecentlyViewed(id)
		}

		c.JSON(http.StatusOK, product)
	}
}

// GET /products/:id/recommendations
func GetRecommendations(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
		recommendations := s.RecommendedProducts(c.Param("id"), limit)
		c.JSON(http.StatusOK, gin.H{"products": recommendations})
	}
}
