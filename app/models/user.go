package models

import "time"

// User is a registered shopper. The credential is stored as supplied; the
// storefront ships without password hashing and the API contract freezes
// that behavior.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	Orders    []string  `bson:"orders" json:"orders"`
}

// PublicUser is the projection returned by register/login; the credential
// never appears in a response.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the user's public projection.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
