// Package users manages staff accounts: sellers who create offers and
// admins who additionally manage users and catalog data.
package users

import "time"

// Roles assignable to an account.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User is a staff account.
type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Ref is the compact user reference embedded in records created by a user.
type Ref struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Ref returns the embeddable reference for the user.
func (u User) Ref() Ref {
	return Ref{ID: u.ID, Email: u.Email, Username: u.Username}
}
