package productcontroller

import (
	"net/http"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// GET /collections/:name
// Named storefront sections: new-arrivals, sale, featured, accessories,
// men, women.
func GetCollection(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		switch c.Param("name") {
		case "new-arrivals":
			products = s.NewArrivals()
		case "sale":
			products = s.SaleProducts()
		case "featured":
			products = s.FeaturedProducts()
		case "accessories":
			products = s.Accessories()
		case "men":
			products = s.ProductsByGender(models.GenderMen)
		case "women":
			products = s.ProductsByGender(models.GenderWomen)
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
	}
}
