package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/elegante-tailoring/storefront-api/models"
)

// CreateUser builds a session user from checkout details, attaches the
// orders already recorded under that email and signs the user in.
func (s *Store) CreateUser(email, firstName, lastName string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []models.Order
	for _, order := range s.orders {
		if strings.EqualFold(order.ShippingInfo.Email, email) {
			orders = append(orders, order)
		}
	}

	user := models.User{
		ID:        fmt.Sprintf("USR-%d", time.Now().UnixMilli()),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Orders:    orders,
	}
	s.currentUser = &user
	s.persist()
	return user
}

// LoginUser records an externally-authenticated user as the session user.
func (s *Store) LoginUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = &user
	s.persist()
}

// LogoutUser clears the session user.
func (s *Store) LogoutUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
	s.persist()
}

// CurrentUser returns the session user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}
