package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentlyViewedPromotesAndDeduplicates(t *testing.T) {
	s := newTestStore(t)

	s.AddToRecentlyViewed("1")
	s.AddToRecentlyViewed("2")
	s.AddToRecentlyViewed("3")
	s.AddToRecentlyViewed("1")

	assert.Equal(t, []string{"1", "3", "2"}, s.RecentlyViewed())
}

func TestRecentlyViewedCappedAtTen(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 15; i++ {
		s.AddToRecentlyViewed(fmt.Sprintf("p%d", i))
	}

	recents := s.RecentlyViewed()
	require.Len(t, recents, 10)
	assert.Equal(t, "p15", recents[0])
	assert.Equal(t, "p6", recents[9])

	seen := map[string]bool{}
	for _, id := range recents {
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestRecentlyViewedProductsResolveInOrder(t *testing.T) {
	s := newTestStore(t)
	s.AddToRecentlyViewed("4")
	s.AddToRecentlyViewed("unknown")
	s.AddToRecentlyViewed("2")

	products := s.RecentlyViewedProducts()

	require.Len(t, products, 2)
	assert.Equal(t, "2", products[0].ID)
	assert.Equal(t, "4", products[1].ID)
}
