package models

// FilterState holds the shopper's current facet selections. Dimensions are
// AND-combined; within a dimension any match passes; an empty dimension means
// "no constraint".
type FilterState struct {
	Categories []string   `json:"categories"`
	PriceRange [2]float64 `json:"priceRange"` // inclusive [min, max]
	Sizes      []string   `json:"sizes"`
	Colors     []string   `json:"colors"` // matched by substring against color names
	Gender     []string   `json:"gender"`
}

// IsZero reports whether no facet constrains anything. A zero-value price
// range counts as unconstrained.
func (f FilterState) IsZero() bool {
	return len(f.Categories) == 0 && len(f.Sizes) == 0 && len(f.Colors) == 0 &&
		len(f.Gender) == 0 && f.PriceRange[0] == 0 && f.PriceRange[1] == 0
}
