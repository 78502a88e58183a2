package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/user/immy-go/apperror"
)

// AuthService implements the registration and login flows: thin
// orchestration over the credential store, the password verifier, and the
// token service.
type AuthService struct {
	store  UserStore
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// Register creates a new user and issues a token for it. An already
// registered email yields a conflict; the uniqueness check rides on the
// store's constraint, so concurrent registrations cannot race into
// duplicates.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("Registration failed", err)
	}

	user := &User{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		HashedPassword: hashed,
	}

	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, apperror.NewConflictError("Email already registered", nil)
		}
		return nil, apperror.NewDatabaseError("Registration failed", err)
	}

	return s.respondWithToken(created)
}

// Login verifies the email/password pair and issues a token. An unknown
// email and a wrong password produce the identical outcome, so a caller
// cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewAuthError("Invalid email or password", nil)
		}
		log.Printf("login: failed to get user by email: %v", err)
		return nil, apperror.NewDatabaseError("Login failed", err)
	}

	if !checkPassword(req.Password, user.HashedPassword) {
		return nil, apperror.NewAuthError("Invalid email or password", nil)
	}

	return s.respondWithToken(user)
}

func (s *AuthService) respondWithToken(user *User) (*AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to issue token", err)
	}
	return &AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}
