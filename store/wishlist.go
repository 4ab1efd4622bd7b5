package store

import "github.com/elegante-tailoring/storefront-api/models"

// AddToWishlist records a product id. Adding an id that is already present
// is a no-op: the wishlist is a set.
func (s *Store) AddToWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.wishlist {
		if id == productID {
			return
		}
	}
	s.wishlist = append(s.wishlist, productID)
	s.persist()
}

// RemoveFromWishlist drops a product id; removing an absent id is a no-op.
func (s *Store) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.wishlist[:0]
	for _, id := range s.wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	s.wishlist = kept
	s.persist()
}

// IsInWishlist reports wishlist membership.
func (s *Store) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// Wishlist returns the wishlisted ids in insertion order.
func (s *Store) Wishlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// WishlistProducts resolves the wishlist against the catalog. Ids that no
// longer resolve to a product are skipped.
func (s *Store) WishlistProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	listed := make(map[string]bool, len(s.wishlist))
	for _, id := range s.wishlist {
		listed[id] = true
	}
	var out []models.Product
	for _, p := range s.products {
		if listed[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
