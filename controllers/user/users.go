package userControllers

import (
	"net/http"

	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
)

type CreateSessionInput struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// POST /session
// Records the remote-authenticated shopper as the session user and attaches
// the orders already placed under that email.
func CreateSession(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateSessionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := s.CreateUser(input.Email, input.FirstName, input.LastName)
		c.JSON(http.StatusCreated, user)
	}
}

// GET /session
func GetSession(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.CurrentUser()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /session
func DeleteSession(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.LogoutUser()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// PUT /session/checkout-step
func SetCheckoutStep(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Step int `json:"step"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		s.SetCheckoutStep(input.Step)
		c.JSON(http.StatusOK, gin.H{"checkoutStep": s.CheckoutStep()})
	}
}
