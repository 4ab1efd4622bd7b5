package store

import (
	"sort"

	"github.com/elegante-tailoring/storefront-api/models"
)

// defaultRecommendationLimit caps "you may also like" suggestions.
const defaultRecommendationLimit = 3

// RecommendedProducts suggests alternatives to a product: every other
// product sharing its gender or category, best-rated first (missing ratings
// count as zero, ties keep catalog order), truncated to limit. A limit of
// zero or less uses the default. Unknown product ids yield no suggestions.
func (s *Store) RecommendedProducts(productID string, limit int) []models.Product {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.productByID(productID)
	if !ok {
		return nil
	}

	var candidates []models.Product
	for _, p := range s.products {
		if p.ID == productID {
			continue
		}
		if p.Gender == current.Gender || p.Category == current.Category {
			candidates = append(candidates, p)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
