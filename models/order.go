package models

import "time"

type OrderStatus string

const (
	// Order statuses, in fulfillment order. Progression is strictly forward;
	// cancellation lives in the remote backend, not here.
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Being prepared for dispatch
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Next returns the following status in the fulfillment flow. Delivered is
// terminal and returns itself.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case OrderStatusPending:
		return OrderStatusProcessing
	case OrderStatusProcessing:
		return OrderStatusShipped
	case OrderStatusShipped:
		return OrderStatusDelivered
	default:
		return s
	}
}

type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// Order is a snapshot of the cart at checkout time. Later cart mutations
// never alter a created order.
type Order struct {
	ID                string       `json:"id"`
	Items             []CartItem   `json:"items"`
	Subtotal          float64      `json:"subtotal"`
	Shipping          float64      `json:"shipping"`
	Tax               float64      `json:"tax"`
	Total             float64      `json:"total"`
	ShippingInfo      ShippingInfo `json:"shippingInfo"`
	PaymentMethod     string       `json:"paymentMethod"` // e.g. "card", "cod"
	Status            OrderStatus  `json:"status"`
	TrackingNumber    string       `json:"trackingNumber"`
	OrderDate         time.Time    `json:"orderDate"`
	EstimatedDelivery time.Time    `json:"estimatedDelivery"`
}
