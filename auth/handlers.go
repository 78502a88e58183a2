package auth

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/user/immy-go/apperror"
	"github.com/user/immy-go/response"
)

// Handlers wraps the AuthService to provide HTTP handlers for the
// registration and login endpoints.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new account and returns its bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} response.Envelope "Registration successful"
// @Failure 400 {object} response.Envelope "Missing fields or invalid email"
// @Failure 409 {object} response.Envelope "Email already registered"
// @Failure 500 {object} response.Envelope "Internal Server Error"
// @Router /register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
			return
		}
		defer r.Body.Close()

		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
			response.WriteError(w, r, apperror.NewValidationError("Missing required fields", nil))
			return
		}
		if !isValidEmail(req.Email) {
			response.WriteError(w, r, apperror.NewValidationError("Invalid email format", nil))
			return
		}

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		response.WriteSuccess(w, http.StatusCreated, "Registration successful", resp)
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in an existing user and returns a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} response.Envelope "Login successful"
// @Failure 400 {object} response.Envelope "Missing fields"
// @Failure 401 {object} response.Envelope "Invalid email or password"
// @Failure 500 {object} response.Envelope "Internal Server Error"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
			return
		}
		defer r.Body.Close()

		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			response.WriteError(w, r, apperror.NewValidationError("Missing required fields", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		response.WriteSuccess(w, http.StatusOK, "Login successful", resp)
	}
}

// isValidEmail checks syntactic well-formedness of an email address.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	// Reject addresses with a display name ("Alice <a@x.com>"); only the
	// bare form is a valid account email.
	return err == nil && addr.Address == strings.TrimSpace(email)
}
