package coach

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/user/immy-go/auth"
	"github.com/user/immy-go/config"
	"github.com/user/immy-go/response"
)

func newCoachRouter(tokens *auth.TokenService, store ChildStore) http.Handler {
	h := NewCoachHandlers(NewCoachService(store))
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))
		r.Get("/coach_data", h.HandleGetCoachData())
	})
	return r
}

func newTokens(ttl time.Duration) *auth.TokenService {
	return auth.NewTokenService(&config.AuthConfig{JWTSecret: "test-secret", TokenDuration: ttl})
}

func getCoachData(t *testing.T, router http.Handler, token, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/coach_data"+query, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCoachData_CrossUserChildRejected(t *testing.T) {
	t.Parallel()

	tokens := newTokens(time.Hour)
	// User 1 owns child 10, user 2 owns child 20.
	router := newCoachRouter(tokens, &fakeChildStore{owners: map[int]int{10: 1, 20: 2}})

	tokenUser1, err := tokens.Issue(1, "one@x.com")
	require.NoError(t, err)

	// User 1 asking for user 2's child is rejected with the merged outcome.
	rec := getCoachData(t, router, tokenUser1, "?child_id=20")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var env response.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.False(t, env.Status)
	require.Equal(t, "Child not found or not authorized", env.Message)

	// The same user asking for its own child succeeds.
	rec = getCoachData(t, router, tokenUser1, "?child_id=10")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCoachData_FirstChildFallback(t *testing.T) {
	t.Parallel()

	tokens := newTokens(time.Hour)
	router := newCoachRouter(tokens, &fakeChildStore{owners: map[int]int{12: 1, 10: 1}})

	token, err := tokens.Issue(1, "one@x.com")
	require.NoError(t, err)

	for _, query := range []string{"", "?child_id=0", "?child_id=abc"} {
		rec := getCoachData(t, router, token, query)
		require.Equal(t, http.StatusOK, rec.Code, "query %q", query)

		var env struct {
			Status bool      `json:"status"`
			Data   CoachData `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
		require.True(t, env.Status)
		require.Equal(t, 10, env.Data.ChildID, "query %q", query)
	}
}

func TestCoachData_NoChildren(t *testing.T) {
	t.Parallel()

	tokens := newTokens(time.Hour)
	router := newCoachRouter(tokens, &fakeChildStore{owners: map[int]int{}})

	token, err := tokens.Issue(1, "one@x.com")
	require.NoError(t, err)

	rec := getCoachData(t, router, token, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var env response.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.False(t, env.Status)
	require.Equal(t, "No children found for this user", env.Message)
}

func TestCoachData_ExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	live := newTokens(time.Hour)
	expired := newTokens(-time.Minute)
	router := newCoachRouter(live, &fakeChildStore{owners: map[int]int{10: 1}})

	// Token constructed with an expiry in the past, signed with the real key.
	tok, err := expired.Issue(1, "one@x.com")
	require.NoError(t, err)

	rec := getCoachData(t, router, tok, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var env response.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.False(t, env.Status)
	require.Equal(t, "Invalid or expired token", env.Message)
}

func TestCoachData_MissingToken(t *testing.T) {
	t.Parallel()

	router := newCoachRouter(newTokens(time.Hour), &fakeChildStore{owners: map[int]int{10: 1}})

	rec := getCoachData(t, router, "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Authorization required")
}
