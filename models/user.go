package models

// User is the locally-recorded session user. Authentication is owned by the
// remote backend; this is only the profile the storefront shows.
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Orders    []Order `json:"orders"`
}
