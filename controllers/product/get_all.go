package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// GET /products
// Browse the catalog with optional search and facet query params. Facets
// given here are request-scoped and do not touch the shopper's stored
// filter selections.
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Search narrows the base list
		base := s.SearchProducts(c.Query("search"))

		// 2️⃣ Facet params
		filters := models.FilterState{
			Categories: splitParam(c.Query("categories")),
			Sizes:      splitParam(c.Query("sizes")),
			Colors:     splitParam(c.Query("colors")),
			Gender:     splitParam(c.Query("gender")),
		}
		if v := c.Query("min_price"); v != "" {
			min, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filters.PriceRange[0] = min
		}
		if v := c.Query("max_price"); v != "" {
			max, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filters.PriceRange[1] = max
		}

		products := store.FilterProducts(base, filters)
		c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
	}
}

// splitParam turns "a,b , c" into {"a","b","c"}.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
