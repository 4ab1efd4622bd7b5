package productcontroller

import (
	"net/http"

	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// GET /facets
// Returns the distinct facet values for building filter UI, optionally
// narrowed by ?search= so the facets track the visible result set.
func GetFacets(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		base := s.SearchProducts(c.Query("search"))
		c.JSON(http.StatusOK, gin.H{
			"categories": s.AvailableCategories(base),
			"sizes":      s.AvailableSizes(base),
			"colors":     s.AvailableColors(base),
			"priceRange": s.PriceRange(base),
		})
	}
}
