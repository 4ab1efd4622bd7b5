package models

// CartItem is one cart line: a product snapshot plus the chosen size, color
// and quantity. Identity of a line is (product id, size, color name); adding
// the same combination again increments the existing line instead of
// appending a duplicate.
type CartItem struct {
	Product
	Quantity      int          `json:"quantity"`
	SelectedSize  string       `json:"selectedSize"`
	SelectedColor ProductColor `json:"selectedColor"`
	// SelectedColorImage is the image shown for this line: the color's first
	// image, or the product's primary image when the color has none.
	SelectedColorImage string `json:"selectedColorImage"`
}

// Matches reports whether the line has the given identity key.
func (i CartItem) Matches(productID, size, colorName string) bool {
	return i.ID == productID && i.SelectedSize == size && i.SelectedColor.Name == colorName
}

// LineTotal is price times quantity for this line.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
