package store

import (
	"testing"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/elegante-tailoring/storefront-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(storage.OpenMemory())
}

func mustProduct(t *testing.T, s *Store, id string) models.Product {
	t.Helper()
	p, ok := s.ProductByID(id)
	require.True(t, ok, "seed product %q missing", id)
	return p
}

func TestAddToCartMergesSameLine(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	skyBlue := shirt.Colors[1]

	s.AddToCart(shirt, "2m", skyBlue)
	s.AddToCart(shirt, "2m", skyBlue)
	s.AddToCart(shirt, "2m", skyBlue)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, "Sky Blue", cart[0].SelectedColor.Name)
}

func TestAddToCartDistinguishesSizeAndColor(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")

	s.AddToCart(shirt, "2m", shirt.Colors[0])
	s.AddToCart(shirt, "3m", shirt.Colors[0])
	s.AddToCart(shirt, "2m", shirt.Colors[1])

	assert.Len(t, s.Cart(), 3)
	assert.Equal(t, 3, s.CartCount())
}

func TestAddToCartColorImageFallback(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")

	withImages := shirt.Colors[0]
	s.AddToCart(shirt, "2m", withImages)

	bare := models.ProductColor{Name: "Bespoke Dye", Value: "#123456"}
	s.AddToCart(shirt, "3m", bare)

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, withImages.Images[0], cart[0].SelectedColorImage)
	assert.Equal(t, shirt.Image, cart[1].SelectedColorImage, "imageless color falls back to the product image")
}

func TestCartTotalsMatchInvariant(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1") // 899
	pant := mustProduct(t, s, "2")  // 1299

	s.AddToCart(shirt, "2m", shirt.Colors[0])
	s.AddToCart(shirt, "2m", shirt.Colors[0])
	s.AddToCart(pant, "2m", pant.Colors[0])

	assert.InDelta(t, 2*899+1299, s.CartTotal(), 1e-9)
	assert.Equal(t, 3, s.CartCount())
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	s.AddToCart(shirt, "2m", shirt.Colors[0])

	s.UpdateQuantity(shirt.ID, "2m", shirt.Colors[0].Name, 7)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 7, cart[0].Quantity)
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	color := shirt.Colors[0]

	s.AddToCart(shirt, "2m", color)
	s.UpdateQuantity(shirt.ID, "2m", color.Name, 0)
	viaUpdate := s.Cart()

	s.AddToCart(shirt, "2m", color)
	s.RemoveFromCart(shirt.ID, "2m", color.Name)
	viaRemove := s.Cart()

	assert.Empty(t, viaUpdate)
	assert.Equal(t, viaUpdate, viaRemove)
}

func TestRemoveFromCartMissingLineIsNoop(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	s.AddToCart(shirt, "2m", shirt.Colors[0])

	s.RemoveFromCart("no-such-product", "2m", "White Cotton")
	s.RemoveFromCart(shirt.ID, "9m", shirt.Colors[0].Name)

	assert.Len(t, s.Cart(), 1)
}

func TestClearCart(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	s.AddToCart(shirt, "2m", shirt.Colors[0])
	s.AddToCart(shirt, "3m", shirt.Colors[1])

	s.ClearCart()

	assert.Empty(t, s.Cart())
	assert.Zero(t, s.CartTotal())
	assert.Zero(t, s.CartCount())
}
