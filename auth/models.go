// Package auth contains the authentication and authorization core: token
// issuance and verification, password hashing, the bearer-token guard, and
// the registration and login flows.
package auth

import "time"

// User represents an account in the system.
type User struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the hashed password
	CreatedAt      time.Time `json:"created_at"`
}
