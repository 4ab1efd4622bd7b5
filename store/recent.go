package store

import "github.com/elegante-tailoring/storefront-api/models"

// recentlyViewedLimit caps the browsing history the storefront keeps.
const recentlyViewedLimit = 10

// AddToRecentlyViewed records a product view. Re-viewing a product moves it
// to the front instead of adding a duplicate; the history never grows past
// recentlyViewedLimit entries.
func (s *Store) AddToRecentlyViewed(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]string, 0, len(s.recentlyViewed)+1)
	updated = append(updated, productID)
	for _, id := range s.recentlyViewed {
		if id != productID {
			updated = append(updated, id)
		}
	}
	if len(updated) > recentlyViewedLimit {
		updated = updated[:recentlyViewedLimit]
	}
	s.recentlyViewed = updated
	s.persist()
}

// RecentlyViewed returns the viewed ids, most recent first.
func (s *Store) RecentlyViewed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.recentlyViewed))
	copy(out, s.recentlyViewed)
	return out
}

// RecentlyViewedProducts resolves the history against the catalog, keeping
// most-recent-first order and skipping ids that no longer resolve.
func (s *Store) RecentlyViewedProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, id := range s.recentlyViewed {
		if p, ok := s.productByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}
