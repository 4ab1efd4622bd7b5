package wishlistControllers

import (
	"net/http"

	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// GET /wishlist
func GetWishlist(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ids":      s.Wishlist(),
			"products": s.WishlistProducts(),
		})
	}
}

// POST /wishlist/:product_id
// Adding an id that is already present is a no-op.
func AddToWishlist(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.AddToWishlist(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"ids": s.Wishlist()})
	}
}

// DELETE /wishlist/:product_id
func RemoveFromWishlist(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.RemoveFromWishlist(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"ids": s.Wishlist()})
	}
}

// GET /wishlist/:product_id
func CheckWishlist(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"inWishlist": s.IsInWishlist(c.Param("product_id"))})
	}
}
