package orderControllers

import (
	"net/http"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// -------- Request Structs --------
type CheckoutRequest struct {
	ShippingInfo  CheckoutShippingInfo `json:"shippingInfo" binding:"required"`
	PaymentMethod string               `json:"paymentMethod" binding:"required"` // e.g. "card", "cod"
}

type CheckoutShippingInfo struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode" binding:"required"`
	Country   string `json:"country" binding:"required"`
}

// -------- Handlers --------

// POST /checkout
// Snapshots the cart into a new order and drains it. The empty-cart check is
// a facade concern; the store itself happily records empty orders.
func Checkout(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if s.CartCount() == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		orderID := s.CreateOrder(models.ShippingInfo{
			FirstName: req.ShippingInfo.FirstName,
			LastName:  req.ShippingInfo.LastName,
			Email:     req.ShippingInfo.Email,
			Phone:     req.ShippingInfo.Phone,
			Address:   req.ShippingInfo.Address,
			City:      req.ShippingInfo.City,
			State:     req.ShippingInfo.State,
			ZipCode:   req.ShippingInfo.ZipCode,
			Country:   req.ShippingInfo.Country,
		}, req.PaymentMethod)

		order, _ := s.OrderByID(orderID)
		broadcastOrderEvent("order_created", order)

		c.JSON(http.StatusCreated, gin.H{"orderId": orderID, "order": order})
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := s.OrderByID(c.Param("orderID"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders?email=
func GetOrdersByEmailHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": s.OrdersByEmail(email)})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": s.Orders()})
	}
}

// POST /admin/orders/:orderID/advance
// Moves an order one step forward through
// pending → processing → shipped → delivered.
func AdvanceOrderStatusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := s.AdvanceOrderStatus(c.Param("orderID"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		broadcastOrderEvent("order_status_changed", order)
		c.JSON(http.StatusOK, order)
	}
}
