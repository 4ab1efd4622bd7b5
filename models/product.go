package models

// Gender labels a product for the men/women storefront sections.
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

// ProductColor is one purchasable color variant of a fabric. A variant with
// no images cannot be rendered and is dropped at the persistence boundary.
type ProductColor struct {
	Name   string   `json:"name"`
	Value  string   `json:"value"` // swatch hex, e.g. "#87CEEB"
	Images []string `json:"images"`
}

// FirstImage returns the variant's primary image, or fallback if the variant
// carries none.
func (c ProductColor) FirstImage(fallback string) string {
	if len(c.Images) > 0 {
		return c.Images[0]
	}
	return fallback
}

// FabricRequirement maps a garment size to the meters of fabric needed to
// tailor it.
type FabricRequirement struct {
	Size        string  `json:"size"`
	Meters      float64 `json:"meters"`
	Description string  `json:"description"`
}

// Product is immutable reference data for the session. Cart operations never
// mutate the catalog; only an admin reseed replaces it.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	// OriginalPrice is the struck-through reference price. Zero means the
	// product has never been discounted.
	OriginalPrice      float64             `json:"originalPrice,omitempty"`
	Image              string              `json:"image"`
	Category           string              `json:"category"`
	Sizes              []string            `json:"sizes"`
	Colors             []ProductColor      `json:"colors"`
	FabricRequirements []FabricRequirement `json:"fabricRequirements"`
	Description        string              `json:"description"`
	UseCases           []string            `json:"useCases,omitempty"`
	Gender             Gender              `json:"gender"`
	IsNewArrival       bool                `json:"isNewArrival,omitempty"`
	IsOnSale           bool                `json:"isOnSale,omitempty"`
	Featured           bool                `json:"featured,omitempty"`
	Stock              map[string]int      `json:"stock,omitempty"` // size -> units, informational only
	Rating             float64             `json:"rating,omitempty"`
	ReviewCount        int                 `json:"reviewCount,omitempty"`
}

// ColorByName finds a variant by its display name.
func (p Product) ColorByName(name string) (ProductColor, bool) {
	for _, c := range p.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return ProductColor{}, false
}
