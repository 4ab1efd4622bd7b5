package routes

import (
	cartControllers "github.com/elegante-tailoring/storefront-api/controllers/cart"
	orderControllers "github.com/elegante-tailoring/storefront-api/controllers/order"
	productcontroller "github.com/elegante-tailoring/storefront-api/controllers/product"
	userControllers "github.com/elegante-tailoring/storefront-api/controllers/user"
	wishlistControllers "github.com/elegante-tailoring/storefront-api/controllers/wishlist"
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers everything the shopper-facing UI calls.
func SetupStorefrontRoutes(r *gin.Engine, s *store.Store) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productcontroller.GetProducts(s))                        // GET /products
	r.GET("/facets", productcontroller.GetFacets(s))                            // GET /facets
	r.GET("/products/:id", productcontroller.GetProductByID(s))                 // GET /products/:id
	r.GET("/products/:id/recommendations", productcontroller.GetRecommendations(s)) // GET /products/:id/recommendations
	r.GET("/collections/:name", productcontroller.GetCollection(s))             // GET /collections/:name

	// ──────────────── Stored Filters ────────────────
	filterGroup := r.Group("/filters")
	{
		filterGroup.GET("", productcontroller.GetFilters(s))      // GET /filters
		filterGroup.PUT("", productcontroller.SetFilters(s))      // PUT /filters
		filterGroup.DELETE("", productcontroller.ClearFilters(s)) // DELETE /filters
	}

	// ──────────────── Recently Viewed ────────────────
	r.GET("/recently-viewed", productcontroller.GetRecentlyViewed(s))                  // GET /recently-viewed
	r.POST("/recently-viewed/:product_id", productcontroller.RecordRecentlyViewed(s)) // POST /recently-viewed/:product_id

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(s))                        // GET /cart
		cartGroup.POST("", cartControllers.AddCartItem(s))                   // POST /cart
		cartGroup.PUT("", cartControllers.UpdateCartQuantity(s))             // PUT /cart
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(s))  // DELETE /cart/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart(s))                   // DELETE /cart
	}

	// ──────────────── Wishlist ────────────────
	wishlistGroup := r.Group("/wishlist")
	{
		wishlistGroup.GET("", wishlistControllers.GetWishlist(s))                       // GET /wishlist
		wishlistGroup.GET("/:product_id", wishlistControllers.CheckWishlist(s))         // GET /wishlist/:product_id
		wishlistGroup.POST("/:product_id", wishlistControllers.AddToWishlist(s))        // POST /wishlist/:product_id
		wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(s)) // DELETE /wishlist/:product_id
	}

	// ──────────────── Checkout & Orders ────────────────
	r.POST("/checkout", orderControllers.Checkout(s))                  // POST /checkout
	r.GET("/orders", orderControllers.GetOrdersByEmailHandler(s))      // GET /orders?email=
	r.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(s)) // GET /orders/:orderID

	// ──────────────── Session User ────────────────
	sessionGroup := r.Group("/session")
	{
		sessionGroup.POST("", userControllers.CreateSession(s))                  // POST /session
		sessionGroup.GET("", userControllers.GetSession(s))                      // GET /session
		sessionGroup.DELETE("", userControllers.DeleteSession(s))                // DELETE /session
		sessionGroup.PUT("/checkout-step", userControllers.SetCheckoutStep(s))   // PUT /session/checkout-step
	}
}
