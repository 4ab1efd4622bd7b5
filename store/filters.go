package store

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/elegante-tailoring/storefront-api/models"
)

// SetFilters replaces the stored facet selections.
func (s *Store) SetFilters(filters models.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
	s.persist()
}

// Filters returns the stored facet selections.
func (s *Store) Filters() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// ClearFilters resets every facet and widens the price range to cover the
// whole catalog.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = models.FilterState{PriceRange: s.derivedPriceRange(s.products)}
	s.persist()
}

// FilteredProducts applies the stored filters to base, or to the full
// catalog when base is nil.
func (s *Store) FilteredProducts(base []models.Product) []models.Product {
	s.mu.Lock()
	filters := s.filters
	if base == nil {
		base = make([]models.Product, len(s.products))
		copy(base, s.products)
	}
	s.mu.Unlock()
	return FilterProducts(base, filters)
}

// FilterProducts applies a facet selection to a product list. Dimensions are
// AND-combined; within a dimension any match passes; an empty dimension
// passes everything. An unset price ceiling (max of zero) is treated as
// unbounded.
func FilterProducts(products []models.Product, filters models.FilterState) []models.Product {
	var out []models.Product
	for _, p := range products {
		if productPassesFilters(p, filters) {
			out = append(out, p)
		}
	}
	return out
}

func productPassesFilters(p models.Product, f models.FilterState) bool {
	if len(f.Categories) > 0 && !containsString(f.Categories, p.Category) {
		return false
	}
	if len(f.Gender) > 0 && !containsString(f.Gender, string(p.Gender)) {
		return false
	}
	if p.Price < f.PriceRange[0] {
		return false
	}
	if f.PriceRange[1] > 0 && p.Price > f.PriceRange[1] {
		return false
	}
	if len(f.Sizes) > 0 {
		matched := false
		for _, size := range p.Sizes {
			if containsString(f.Sizes, size) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if len(f.Colors) > 0 {
		matched := false
		for _, color := range p.Colors {
			for _, want := range f.Colors {
				if strings.Contains(strings.ToLower(color.Name), strings.ToLower(want)) {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// AvailableCategories derives the distinct categories of a product list
// (defaulting to the catalog), sorted lexically, for building filter UI.
func (s *Store) AvailableCategories(base []models.Product) []string {
	base = s.baseOrCatalog(base)
	seen := map[string]bool{}
	var out []string
	for _, p := range base {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// AvailableSizes derives the distinct size labels. Labels with a leading
// numeric component ("2.5m") sort numerically; the rest sort lexically after
// them.
func (s *Store) AvailableSizes(base []models.Product) []string {
	base = s.baseOrCatalog(base)
	seen := map[string]bool{}
	var out []string
	for _, p := range base {
		for _, size := range p.Sizes {
			if !seen[size] {
				seen[size] = true
				out = append(out, size)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, aNum := leadingNumber(out[i])
		b, bNum := leadingNumber(out[j])
		if aNum && bNum {
			return a < b
		}
		if aNum != bNum {
			return aNum
		}
		return out[i] < out[j]
	})
	return out
}

// leadingNumber parses the numeric prefix of a size label, so "2.5m" orders
// by 2.5.
func leadingNumber(s string) (float64, bool) {
	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AvailableColors derives the distinct color names, sorted lexically.
func (s *Store) AvailableColors(base []models.Product) []string {
	base = s.baseOrCatalog(base)
	seen := map[string]bool{}
	var out []string
	for _, p := range base {
		for _, c := range p.Colors {
			if !seen[c.Name] {
				seen[c.Name] = true
				out = append(out, c.Name)
			}
		}
	}
	sort.Strings(out)
	return out
}

// PriceRange derives the catalog's price span rounded outward to the nearest
// 10, for seeding the price slider.
func (s *Store) PriceRange(base []models.Product) [2]float64 {
	base = s.baseOrCatalog(base)
	return s.derivedPriceRange(base)
}

func (s *Store) derivedPriceRange(products []models.Product) [2]float64 {
	if len(products) == 0 {
		return [2]float64{0, defaultPriceCeiling}
	}
	min, max := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return [2]float64{math.Floor(min/10) * 10, math.Ceil(max/10) * 10}
}

func (s *Store) baseOrCatalog(base []models.Product) []models.Product {
	if base != nil {
		return base
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}
