package users

import (
	"context"
	"errors"

	"github.com/user/immy-go/apperror"
	"github.com/user/immy-go/auth"
)

// UserService provides profile retrieval for the authenticated subject.
type UserService struct {
	store ProfileStore
}

// NewUserService creates a new UserService.
func NewUserService(store ProfileStore) *UserService {
	return &UserService{store: store}
}

// GetProfile returns the subject's own record plus all children it owns.
// A verified token does not guarantee the subject still exists, so existence
// is re-checked here against the store.
func (s *UserService) GetProfile(ctx context.Context, userID int) (*ProfileResponse, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// A token whose subject no longer resolves to an account is no
			// longer a valid credential.
			return nil, apperror.NewAuthError("Invalid or expired token", nil)
		}
		return nil, apperror.NewDatabaseError("Failed to get user profile", err)
	}

	children, err := s.store.ListChildren(ctx, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("Failed to get children", err)
	}

	return &ProfileResponse{
		User: ProfileUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		Children: children,
	}, nil
}
