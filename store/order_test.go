package store

import (
	"strings"
	"testing"
	"time"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShipping = models.ShippingInfo{
	FirstName: "Asha",
	LastName:  "Verma",
	Email:     "asha@example.com",
	Phone:     "+91 98765 43210",
	Address:   "12 Tailor Lane",
	City:      "Mumbai",
	State:     "MH",
	ZipCode:   "400001",
	Country:   "India",
}

func TestCreateOrderComputesTotals(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1") // 899
	s.AddToCart(shirt, "2m", shirt.Colors[1])

	orderID := s.CreateOrder(testShipping, "card")

	order, ok := s.OrderByID(orderID)
	require.True(t, ok)
	assert.InDelta(t, 899, order.Subtotal, 1e-9)
	assert.Zero(t, order.Shipping, "899 is over the free-shipping threshold")
	assert.InDelta(t, 71.92, order.Tax, 1e-9)
	assert.InDelta(t, 970.92, order.Total, 1e-9)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestCreateOrderFlatFeeUnderThreshold(t *testing.T) {
	s := newTestStore(t)
	cheap := models.Product{ID: "c1", Name: "Remnant Swatch", Price: 120, Image: "/assets/swatch.jpg"}
	s.AddToCart(cheap, "1m", models.ProductColor{Name: "Indigo", Images: []string{"/assets/swatch.jpg"}})

	orderID := s.CreateOrder(testShipping, "cod")

	order, ok := s.OrderByID(orderID)
	require.True(t, ok)
	assert.InDelta(t, 120, order.Subtotal, 1e-9)
	assert.InDelta(t, 25, order.Shipping, 1e-9)
	assert.InDelta(t, 9.6, order.Tax, 1e-9)
	assert.InDelta(t, 154.6, order.Total, 1e-9)
}

func TestCreateOrderDrainsCartAndSnapshotsItems(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	pant := mustProduct(t, s, "2")
	s.AddToCart(shirt, "2m", shirt.Colors[0])
	s.AddToCart(pant, "3m", pant.Colors[2])
	snapshotBefore := s.Cart()
	s.SetCheckoutStep(2)

	orderID := s.CreateOrder(testShipping, "card")

	assert.Empty(t, s.Cart(), "checkout drains the cart")
	assert.Zero(t, s.CheckoutStep(), "checkout resets the step indicator")

	order, ok := s.OrderByID(orderID)
	require.True(t, ok)
	assert.Equal(t, snapshotBefore, order.Items)

	// Later cart mutations never leak into the recorded order.
	s.AddToCart(shirt, "4m", shirt.Colors[1])
	order, _ = s.OrderByID(orderID)
	assert.Equal(t, snapshotBefore, order.Items)
}

func TestCreateOrderGeneratedFields(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	s.AddToCart(shirt, "2m", shirt.Colors[0])

	before := time.Now()
	orderID := s.CreateOrder(testShipping, "card")

	order, ok := s.OrderByID(orderID)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.True(t, strings.HasPrefix(order.TrackingNumber, "TRK"))
	assert.Equal(t, order.TrackingNumber, strings.ToUpper(order.TrackingNumber))
	assert.False(t, order.OrderDate.Before(before.Truncate(time.Second)))

	delivery := order.OrderDate.AddDate(0, 0, 10)
	assert.Equal(t, delivery, order.EstimatedDelivery)
}

func TestOrderIDsAreUnique(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		s.AddToCart(shirt, "2m", shirt.Colors[0])
		id := s.CreateOrder(testShipping, "card")
		assert.False(t, seen[id], "duplicate order id %q", id)
		seen[id] = true
	}
}

func TestOrdersByEmailCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	s.AddToCart(shirt, "2m", shirt.Colors[0])
	s.CreateOrder(testShipping, "card")

	other := testShipping
	other.Email = "someone.else@example.com"
	s.AddToCart(shirt, "2m", shirt.Colors[0])
	s.CreateOrder(other, "card")

	matches := s.OrdersByEmail("ASHA@Example.COM")
	require.Len(t, matches, 1)
	assert.Equal(t, "asha@example.com", matches[0].ShippingInfo.Email)
}

func TestOrdersMostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")

	s.AddToCart(shirt, "2m", shirt.Colors[0])
	first := s.CreateOrder(testShipping, "card")
	s.AddToCart(shirt, "2m", shirt.Colors[0])
	second := s.CreateOrder(testShipping, "card")

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].ID)
	assert.Equal(t, first, orders[1].ID)
}

func TestAdvanceOrderStatusForwardOnly(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	s.AddToCart(shirt, "2m", shirt.Colors[0])
	orderID := s.CreateOrder(testShipping, "card")

	want := []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusDelivered, // terminal state never regresses
	}
	for _, status := range want {
		order, ok := s.AdvanceOrderStatus(orderID)
		require.True(t, ok)
		assert.Equal(t, status, order.Status)
	}

	_, ok := s.AdvanceOrderStatus("no-such-order")
	assert.False(t, ok)
}

func TestOrderByIDMissing(t *testing.T) {
	s := newTestStore(t)
	_, ok := s.OrderByID("ORD-0-missing")
	assert.False(t, ok)
}
