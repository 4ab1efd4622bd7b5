package store

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/elegante-tailoring/storefront-api/models"
)

// snapshot is the wire shape of the persisted blob: the entire store state
// serialized as one unit.
type snapshot struct {
	Products       []models.Product   `json:"products"`
	Cart           []models.CartItem  `json:"cart"`
	Wishlist       []string           `json:"wishlist"`
	RecentlyViewed []string           `json:"recentlyViewed"`
	SearchQuery    string             `json:"searchQuery"`
	Orders         []models.Order     `json:"orders"`
	CurrentUser    *models.User       `json:"currentUser"`
	CheckoutStep   int                `json:"checkoutStep"`
	Filters        models.FilterState `json:"filters"`
}

// persist writes the whole state to the backend. Callers must hold s.mu.
// Persistence is a fire-and-forget side effect: failures are logged, never
// returned, so a broken disk cannot break cart operations.
func (s *Store) persist() {
	snap := snapshot{
		Products:       s.products,
		Cart:           s.cart,
		Wishlist:       s.wishlist,
		RecentlyViewed: s.recentlyViewed,
		SearchQuery:    s.searchQuery,
		Orders:         s.orders,
		CurrentUser:    s.currentUser,
		CheckoutStep:   s.checkoutStep,
		Filters:        s.filters,
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		log.Printf("⚠️ Failed to serialize store state: %v", err)
		return
	}
	if err := s.backend.Save(Namespace, blob); err != nil {
		log.Printf("⚠️ Failed to persist store state: %v", err)
	}
}

// restore rehydrates the store from a persisted blob, validating shape at
// the boundary. Individually malformed records are dropped rather than
// propagated inward; only an unreadable blob is an error.
func (s *Store) restore(blob []byte) error {
	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return fmt.Errorf("decode state blob: %w", err)
	}

	products := sanitizeProducts(snap.Products)
	if len(products) == 0 {
		// A blob with no usable catalog is as good as no blob.
		return fmt.Errorf("state blob carries no valid products")
	}
	s.products = products

	s.cart = nil
	for _, item := range snap.Cart {
		if item.Quantity < 1 || item.ID == "" || item.SelectedSize == "" || item.SelectedColor.Name == "" {
			continue
		}
		s.cart = append(s.cart, item)
	}

	s.wishlist = nil
	seen := map[string]bool{}
	for _, id := range snap.Wishlist {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		s.wishlist = append(s.wishlist, id)
	}

	s.recentlyViewed = nil
	seen = map[string]bool{}
	for _, id := range snap.RecentlyViewed {
		if id == "" || seen[id] || len(s.recentlyViewed) == recentlyViewedLimit {
			continue
		}
		seen[id] = true
		s.recentlyViewed = append(s.recentlyViewed, id)
	}

	s.orders = nil
	for _, order := range snap.Orders {
		if order.ID == "" || !order.Status.Valid() {
			continue
		}
		s.orders = append(s.orders, order)
	}

	s.searchQuery = snap.SearchQuery
	s.currentUser = snap.CurrentUser
	if s.currentUser != nil && strings.TrimSpace(s.currentUser.Email) == "" {
		s.currentUser = nil
	}

	s.checkoutStep = snap.CheckoutStep
	if s.checkoutStep < 0 {
		s.checkoutStep = 0
	}

	s.filters = snap.Filters
	if s.filters.PriceRange[1] < s.filters.PriceRange[0] {
		s.filters.PriceRange = s.derivedPriceRange(s.products)
	}

	return nil
}

// sanitizeProducts drops records the storefront cannot render: products
// without an id or name, and color variants without images.
func sanitizeProducts(products []models.Product) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			continue
		}
		var colors []models.ProductColor
		for _, c := range p.Colors {
			if c.Name == "" || len(c.Images) == 0 {
				continue
			}
			colors = append(colors, c)
		}
		p.Colors = colors
		out = append(out, p)
	}
	return out
}
