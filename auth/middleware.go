package auth

import (
	"net/http"
	"strings"

	"github.com/user/immy-go/apperror"
	"github.com/user/immy-go/response"
)

// RequireAuth returns middleware that guards a route group: it extracts the
// bearer token from the Authorization header, verifies it, and stores the
// subject's user id in the request context. Requests without a valid token
// never reach the wrapped handlers.
//
// The header value may carry a "Bearer " prefix or be a bare token; both
// forms are accepted. Verification failures are reported to the client as a
// single "invalid or expired" outcome regardless of cause, so the response
// does not reveal whether the token was malformed, forged, or stale.
func RequireAuth(tokens *TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.WriteError(w, r, apperror.NewAuthError("Authorization required", nil))
				return
			}

			tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			claims, err := tokens.Verify(tokenString)
			if err != nil {
				response.WriteError(w, r, apperror.NewAuthError("Invalid or expired token", err))
				return
			}

			ctx := NewContextWithUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
