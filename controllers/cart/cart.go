package cartControllers

import (
	"net/http"

	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

type CartItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	ColorName string `json:"colorName" binding:"required"`
}

type CartQuantityInput struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	ColorName string `json:"colorName" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// GET /cart
func GetCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items": s.Cart(),
			"total": s.CartTotal(),
			"count": s.CartCount(),
		})
	}
}

// POST /cart
// Adds one unit of the chosen product/size/color. The same combination adds
// to the existing line instead of creating a duplicate.
func AddCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := s.ProductByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		color, ok := product.ColorByName(input.ColorName)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product has no such color"})
			return
		}

		s.AddToCart(product, input.Size, color)
		c.JSON(http.StatusCreated, gin.H{
			"items": s.Cart(),
			"total": s.CartTotal(),
			"count": s.CartCount(),
		})
	}
}

// PUT /cart
// Sets a line's quantity to an absolute value; zero or less removes it.
func UpdateCartQuantity(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s.UpdateQuantity(input.ProductID, input.Size, input.ColorName, input.Quantity)
		c.JSON(http.StatusOK, gin.H{
			"items": s.Cart(),
			"total": s.CartTotal(),
			"count": s.CartCount(),
		})
	}
}

// DELETE /cart/:product_id?size=&color=
func DeleteCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		size := c.Query("size")
		colorName := c.Query("color")
		if size == "" || colorName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size and color are required"})
			return
		}

		s.RemoveFromCart(c.Param("product_id"), size, colorName)
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed", "count": s.CartCount()})
	}
}

// DELETE /cart
func ClearCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
