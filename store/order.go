package store

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/google/uuid"
)

const (
	// freeShippingThreshold is the canonical free-shipping cutoff: orders of
	// at least this subtotal ship free, everything below pays the flat fee.
	freeShippingThreshold = 500
	flatShippingFee       = 25

	taxRate          = 0.08
	deliveryLeadDays = 10
)

// CreateOrder snapshots the current cart into a new order, computes its
// totals, prepends it to the order history, empties the cart and resets the
// checkout step. Returns the generated order id. Later cart mutations never
// alter the created order.
func (s *Store) CreateOrder(shippingInfo models.ShippingInfo, paymentMethod string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.cartTotal()
	shipping := float64(flatShippingFee)
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}
	tax := math.Round(subtotal*taxRate*100) / 100

	items := make([]models.CartItem, len(s.cart))
	copy(items, s.cart)

	now := time.Now()
	order := models.Order{
		ID:                generateOrderID(now),
		Items:             items,
		Subtotal:          subtotal,
		Shipping:          shipping,
		Tax:               tax,
		Total:             subtotal + shipping + tax,
		ShippingInfo:      shippingInfo,
		PaymentMethod:     paymentMethod,
		Status:            models.OrderStatusPending,
		TrackingNumber:    generateTrackingNumber(),
		OrderDate:         now,
		EstimatedDelivery: now.AddDate(0, 0, deliveryLeadDays),
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.cart = nil
	s.checkoutStep = 0
	s.persist()

	return order.ID
}

// generateOrderID builds a time-based id with a random suffix,
// e.g. ORD-1735689600123-4f9a1c2b0.
func generateOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), randomToken(9))
}

// generateTrackingNumber builds an uppercase carrier-style reference,
// e.g. TRK8C1F0A2B94.
func generateTrackingNumber() string {
	return "TRK" + strings.ToUpper(randomToken(10))
}

func randomToken(length int) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length > len(token) {
		length = len(token)
	}
	return token[:length]
}

// Orders returns the order history, most recent first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrderByID looks up an order by its exact id.
func (s *Store) OrderByID(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.ID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

// OrdersByEmail returns the orders whose shipping email matches,
// case-insensitively.
func (s *Store) OrdersByEmail(email string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, order := range s.orders {
		if strings.EqualFold(order.ShippingInfo.Email, email) {
			out = append(out, order)
		}
	}
	return out
}

// AdvanceOrderStatus moves an order one step forward through
// pending → processing → shipped → delivered. Delivered orders stay
// delivered; unknown ids are a no-op and report ok=false.
func (s *Store) AdvanceOrderStatus(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = s.orders[i].Status.Next()
			s.persist()
			return s.orders[i], true
		}
	}
	return models.Order{}, false
}
