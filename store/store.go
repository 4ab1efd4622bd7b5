// Package store is the single source of truth for the storefront session:
// product catalog, cart, wishlist, recently-viewed history, search/filter
// criteria, locally-recorded orders and the session user. All operations are
// synchronous in-memory transformations serialized by one mutex; after every
// mutation the whole state is persisted as one blob to the configured
// storage backend.
package store

import (
	"log"
	"sync"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/elegante-tailoring/storefront-api/storage"
)

// Namespace is the fixed key the store state is persisted under.
const Namespace = "elegante-tailoring-store"

// defaultPriceCeiling is the price-range upper bound used when the catalog is
// empty and no range can be derived.
const defaultPriceCeiling = 2000

type Store struct {
	mu      sync.Mutex
	backend storage.Backend

	products       []models.Product
	cart           []models.CartItem
	wishlist       []string
	recentlyViewed []string
	searchQuery    string
	orders         []models.Order
	currentUser    *models.User
	checkoutStep   int
	filters        models.FilterState
}

// New rehydrates a store from the backend, falling back to the seeded
// catalog and empty user state when nothing is persisted or the persisted
// blob is malformed. Malformed state is never surfaced to the caller.
func New(backend storage.Backend) *Store {
	s := &Store{backend: backend}
	s.seedDefaults()

	blob, ok, err := backend.Load(Namespace)
	if err != nil {
		log.Printf("⚠️ Failed to load persisted store state, using defaults: %v", err)
		return s
	}
	if !ok {
		return s
	}
	if err := s.restore(blob); err != nil {
		log.Printf("⚠️ Persisted store state is malformed, using defaults: %v", err)
		s.seedDefaults()
	}
	return s
}

// seedDefaults resets every field to the out-of-the-box state.
func (s *Store) seedDefaults() {
	s.products = seedCatalog()
	s.cart = nil
	s.wishlist = nil
	s.recentlyViewed = nil
	s.searchQuery = ""
	s.orders = nil
	s.currentUser = nil
	s.checkoutStep = 0
	s.filters = models.FilterState{PriceRange: s.derivedPriceRange(s.products)}
}

// Reset discards all user state and reseeds the catalog.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedDefaults()
	s.persist()
}

// Close flushes nothing (every mutation already persisted) and closes the
// backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// CheckoutStep returns the in-progress checkout step indicator.
func (s *Store) CheckoutStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkoutStep
}

// SetCheckoutStep records how far the shopper is through checkout.
func (s *Store) SetCheckoutStep(step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if step < 0 {
		step = 0
	}
	s.checkoutStep = step
	s.persist()
}
