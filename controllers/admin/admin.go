package adminController

import (
	"net/http"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// GET /admin/dashboard
// Back-office summary: catalog size, order pipeline and revenue.
func GetDashboard(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := s.Orders()

		var revenue float64
		statusCounts := map[models.OrderStatus]int{}
		for _, order := range orders {
			revenue += order.Total
			statusCounts[order.Status]++
		}

		c.JSON(http.StatusOK, gin.H{
			"products":      len(s.Products()),
			"orders":        len(orders),
			"revenue":       revenue,
			"ordersByStatus": statusCounts,
			"cartCount":     s.CartCount(),
			"wishlistCount": len(s.Wishlist()),
		})
	}
}

// POST /admin/store/reset
// Drops all user state and reseeds the default catalog.
func ResetStore(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Reset()
		c.JSON(http.StatusOK, gin.H{"message": "Store reset to defaults"})
	}
}
