package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecoverer(t *testing.T) {
	t.Parallel()

	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	require.False(t, env.Status)
	require.Equal(t, "internal server error", env.Message)
	// The panic value itself never reaches the client.
	require.NotContains(t, body, "boom")
}

func TestRecoverer_PassthroughWithoutPanic(t *testing.T) {
	t.Parallel()

	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}
