package auth

import "context"

// contextKey is a custom type for context keys. Using a custom type prevents
// collisions with context keys defined in other packages.
type contextKey string

// userIDContextKey is the key under which the authenticated subject's user
// id is stored in the request context.
const userIDContextKey contextKey = "auth_user_id"

// NewContextWithUserID returns a child context carrying the authenticated
// subject's user id. The value lives only for the duration of the request.
func NewContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext extracts the authenticated subject's user id from the
// context. The second return value reports whether a subject was present.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int)
	return userID, ok
}
