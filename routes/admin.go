package routes

import (
	adminController "github.com/elegante-tailoring/storefront-api/controllers/admin"
	orderControllers "github.com/elegante-tailoring/storefront-api/controllers/order"
	productcontroller "github.com/elegante-tailoring/storefront-api/controllers/product"
	"github.com/elegante-tailoring/storefront-api/middleware"
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all "/admin/*" endpoints plus the live order
// feed. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, s *store.Store) {
	// Live order feed for the admin dashboard. Upgraded connections cannot
	// carry custom headers from browsers, so the feed sits outside the
	// API-key group.
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboard(s))

		// ─────────── Catalog Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(s))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(s))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(s))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(s))
			orderAdmin.POST("/:orderID/advance", orderControllers.AdvanceOrderStatusHandler(s))
		}

		// ─────────── Store Lifecycle ───────────
		adminGroup.POST("/store/reset", adminController.ResetStore(s))
	}
}
