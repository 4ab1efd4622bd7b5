package store

import (
	"strings"
	"testing"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAttachesMatchingOrders(t *testing.T) {
	s := newTestStore(t)
	shirt := mustProduct(t, s, "1")
	s.AddToCart(shirt, "2m", shirt.Colors[0])
	orderID := s.CreateOrder(testShipping, "card")

	user := s.CreateUser("ASHA@example.com", "Asha", "Verma")

	assert.True(t, strings.HasPrefix(user.ID, "USR-"))
	require.Len(t, user.Orders, 1)
	assert.Equal(t, orderID, user.Orders[0].ID)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginLogout(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.CurrentUser()
	assert.False(t, ok)

	s.LoginUser(models.User{ID: "USR-1", Email: "x@example.com"})
	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "USR-1", current.ID)

	s.LogoutUser()
	_, ok = s.CurrentUser()
	assert.False(t, ok)
}
