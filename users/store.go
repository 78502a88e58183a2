package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/immy-go/auth"
)

// ProfileStore provides the reads backing the profile endpoint.
type ProfileStore interface {
	GetUserByID(ctx context.Context, id int) (*auth.User, error)
	ListChildren(ctx context.Context, userID int) ([]Child, error)
}

// PostgresProfileStore implements ProfileStore on top of a pgx pool.
type PostgresProfileStore struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileStore creates a PostgresProfileStore.
func NewPostgresProfileStore(pool *pgxpool.Pool) *PostgresProfileStore {
	return &PostgresProfileStore{pool: pool}
}

// GetUserByID looks up a user by id, returning auth.ErrUserNotFound when
// there is no such row.
func (s *PostgresProfileStore) GetUserByID(ctx context.Context, id int) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, name, email, created_at FROM users WHERE id = $1`
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListChildren returns all children owned by the user, ordered by id.
func (s *PostgresProfileStore) ListChildren(ctx context.Context, userID int) ([]Child, error) {
	query := `SELECT id, user_id, name, age, interests FROM children WHERE user_id = $1 ORDER BY id`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	children := []Child{}
	for rows.Next() {
		var c Child
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Age, &c.Interests); err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, rows.Err()
}
