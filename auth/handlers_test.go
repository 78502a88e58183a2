package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/immy-go/response"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleRegister_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService()
	h := NewHandlers(svc)

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"not json", `{{`, "Invalid request body"},
		{"missing name", `{"email":"a@x.com","password":"pw"}`, "Missing required fields"},
		{"missing email", `{"name":"Alice","password":"pw"}`, "Missing required fields"},
		{"missing password", `{"name":"Alice","email":"a@x.com"}`, "Missing required fields"},
		{"bad email", `{"name":"Alice","email":"not-an-email","password":"pw"}`, "Invalid email format"},
		{"email with display name", `{"name":"Alice","email":"Alice <a@x.com>","password":"pw"}`, "Invalid email format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.HandleRegister(), tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var env response.Envelope
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
			require.False(t, env.Status)
			require.Equal(t, tc.message, env.Message)
		})
	}
}

func TestHandleRegister_Success(t *testing.T) {
	t.Parallel()

	svc, _, tokens := newTestAuthService()
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleRegister(), `{"name":"Alice","email":"a@x.com","password":"pw12345"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var env struct {
		Status  bool         `json:"status"`
		Message string       `json:"message"`
		Data    AuthResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.True(t, env.Status)
	require.Equal(t, "Registration successful", env.Message)
	require.Equal(t, "Alice", env.Data.Name)
	require.Equal(t, "a@x.com", env.Data.Email)

	claims, err := tokens.Verify(env.Data.Token)
	require.NoError(t, err)
	require.Equal(t, env.Data.ID, claims.UserID)
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService()
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleRegister(), `{"name":"Alice","email":"a@x.com","password":"pw12345"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.HandleRegister(), `{"name":"Mallory","email":"a@x.com","password":"other"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var env response.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.False(t, env.Status)
	require.Equal(t, "Email already registered", env.Message)
}

func TestHandleLogin_FlowAfterRegister(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService()
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleRegister(), `{"name":"Alice","email":"a@x.com","password":"pw12345"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.HandleLogin(), `{"email":"a@x.com","password":"pw12345"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Status bool         `json:"status"`
		Data   AuthResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.True(t, env.Status)
	require.NotEmpty(t, env.Data.Token)

	rec = postJSON(t, h.HandleLogin(), `{"email":"a@x.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var fail response.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fail))
	require.False(t, fail.Status)
	require.Equal(t, "Invalid email or password", fail.Message)
}

func TestHandleLogin_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService()
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleLogin(), `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env response.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.False(t, env.Status)
	require.Equal(t, "Missing required fields", env.Message)
}
