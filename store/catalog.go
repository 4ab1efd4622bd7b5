package store

import (
	"strings"

	"github.com/elegante-tailoring/storefront-api/models"
)

// Products returns a copy of the full catalog.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID looks up a single product.
func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productByID(id)
}

func (s *Store) productByID(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ProductsByGender returns the men's or women's section of the catalog.
func (s *Store) ProductsByGender(gender models.Gender) []models.Product {
	return s.selectProducts(func(p models.Product) bool { return p.Gender == gender })
}

// NewArrivals returns products flagged as new.
func (s *Store) NewArrivals() []models.Product {
	return s.selectProducts(func(p models.Product) bool { return p.IsNewArrival })
}

// SaleProducts returns products flagged as on sale.
func (s *Store) SaleProducts() []models.Product {
	return s.selectProducts(func(p models.Product) bool { return p.IsOnSale })
}

// FeaturedProducts returns the homepage selection.
func (s *Store) FeaturedProducts() []models.Product {
	return s.selectProducts(func(p models.Product) bool { return p.Featured })
}

// Accessories returns the accessories category.
func (s *Store) Accessories() []models.Product {
	return s.selectProducts(func(p models.Product) bool { return p.Category == "Accessories" })
}

// UpsellProducts are the add-ons suggested at checkout; currently the
// accessories category.
func (s *Store) UpsellProducts() []models.Product {
	return s.Accessories()
}

func (s *Store) selectProducts(keep func(models.Product) bool) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// SetSearchQuery stores the live search box value.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
	s.persist()
}

// SearchQuery returns the stored search box value.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// SearchProducts matches the query case-insensitively against name,
// category, description, use cases and gender. A blank query falls back to
// the stored search query; if that too is blank the full catalog is
// returned.
func (s *Store) SearchProducts(query string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := query
	if term == "" {
		term = s.searchQuery
	}
	if strings.TrimSpace(term) == "" {
		out := make([]models.Product, len(s.products))
		copy(out, s.products)
		return out
	}

	term = strings.ToLower(term)
	var out []models.Product
	for _, p := range s.products {
		if productMatchesQuery(p, term) {
			out = append(out, p)
		}
	}
	return out
}

func productMatchesQuery(p models.Product, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(p.Category), lowerTerm) ||
		strings.Contains(strings.ToLower(p.Description), lowerTerm) ||
		strings.Contains(strings.ToLower(string(p.Gender)), lowerTerm) {
		return true
	}
	for _, useCase := range p.UseCases {
		if strings.Contains(strings.ToLower(useCase), lowerTerm) {
			return true
		}
	}
	return false
}

// ReplaceCatalog swaps in a new catalog after sanitizing it. This is the
// admin reseed path and the only sanctioned catalog mutation; an empty or
// fully-invalid replacement is rejected and the current catalog kept.
func (s *Store) ReplaceCatalog(products []models.Product) int {
	cleaned := sanitizeProducts(products)
	if len(cleaned) == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = cleaned
	s.persist()
	return len(cleaned)
}
