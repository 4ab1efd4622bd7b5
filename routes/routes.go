package routes

import (
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// SetupRoutes is the single entry-point that wires up the storefront and
// admin route groups over one store handle.
func SetupRoutes(r *gin.Engine, s *store.Store) {
	// 1️⃣ Storefront routes (public)
	SetupStorefrontRoutes(r, s)

	// 2️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, s)
}
