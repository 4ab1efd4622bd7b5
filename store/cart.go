package store

import "github.com/elegante-tailoring/storefront-api/models"

// AddToCart adds one unit of the product in the given size and color. A line
// already holding that (product, size, color name) combination is
// incremented instead of duplicated. No stock validation happens here: the
// store is a pure cart accumulator and stock limits are a UI concern.
func (s *Store) AddToCart(product models.Product, size string, color models.ProductColor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Matches(product.ID, size, color.Name) {
			s.cart[i].Quantity++
			s.persist()
			return
		}
	}

	s.cart = append(s.cart, models.CartItem{
		Product:            product,
		Quantity:           1,
		SelectedSize:       size,
		SelectedColor:      color,
		SelectedColorImage: color.FirstImage(product.Image),
	})
	s.persist()
}

// RemoveFromCart deletes the matching line. Removing a line that does not
// exist is a no-op.
func (s *Store) RemoveFromCart(productID, size, colorName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLine(productID, size, colorName)
	s.persist()
}

// removeLine deletes the matching line in place. Callers must hold s.mu.
func (s *Store) removeLine(productID, size, colorName string) {
	kept := s.cart[:0]
	for _, item := range s.cart {
		if !item.Matches(productID, size, colorName) {
			kept = append(kept, item)
		}
	}
	s.cart = kept
}

// UpdateQuantity sets the matching line's quantity to an absolute value.
// Quantities of zero or less remove the line entirely; a line never exists
// with quantity below one.
func (s *Store) UpdateQuantity(productID, size, colorName string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLine(productID, size, colorName)
		s.persist()
		return
	}

	for i := range s.cart {
		if s.cart[i].Matches(productID, size, colorName) {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persist()
}

// Cart returns a copy of the current cart lines.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal is the sum of price times quantity over current lines.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotal()
}

func (s *Store) cartTotal() float64 {
	var total float64
	for _, item := range s.cart {
		total += item.LineTotal()
	}
	return total
}

// CartCount is the sum of quantities over current lines.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}
