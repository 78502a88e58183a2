package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/immy-go/apperror"
)

func TestWriteSuccess(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteSuccess(rec, http.StatusCreated, "Registration successful", map[string]int{"id": 1})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.True(t, env.Status)
	require.Equal(t, "Registration successful", env.Message)
	require.NotNil(t, env.Data)
}

func TestWriteError_AppError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/coach_data", nil)
	WriteError(rec, req, apperror.NewNotFoundError("Child not found or not authorized", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var env Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.False(t, env.Status)
	require.Equal(t, "Child not found or not authorized", env.Message)
	require.Nil(t, env.Data)
}

func TestWriteError_UnknownErrorDoesNotLeakCause(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	WriteError(rec, req, errors.New("pq: duplicate key value violates unique constraint"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var env Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.False(t, env.Status)
	// The raw storage error text must never reach the client.
	require.Equal(t, "Something went wrong", env.Message)
	require.NotContains(t, env.Message, "duplicate key")
}
