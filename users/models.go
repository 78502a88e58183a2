// Package users implements profile retrieval for the authenticated account:
// the user's own record plus the child records it owns.
package users

// Child represents a child record owned by a user. A child is visible only
// to its owner; the owning user id never leaves the server.
type Child struct {
	ID        int    `json:"id"`
	UserID    int    `json:"-"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Interests string `json:"interests"`
}
