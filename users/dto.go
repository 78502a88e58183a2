package users

import "time"

// ProfileUser is the public view of a user record.
type ProfileUser struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse is the success payload of the profile endpoint.
// Children is always present, as an empty array when the account owns none.
type ProfileResponse struct {
	User     ProfileUser `json:"user"`
	Children []Child     `json:"children"`
}
