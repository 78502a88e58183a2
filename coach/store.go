// Package coach serves the child-scoped coach-data feed. Its core is the
// ownership resolver: the authorization boundary that decides which child
// record, if any, a request may read.
package coach

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors returned by ChildStore implementations.
var (
	// ErrChildNotFound covers both "no such child" and "child owned by
	// someone else"; the two are indistinguishable by contract.
	ErrChildNotFound = errors.New("child not found or not owned")
	// ErrNoChildren means the user owns no children at all.
	ErrNoChildren = errors.New("no children for user")
)

// ChildStore provides the ownership reads used by the resolver.
type ChildStore interface {
	// OwnedChildID returns childID if that child exists and is owned by
	// userID, and ErrChildNotFound otherwise.
	OwnedChildID(ctx context.Context, childID, userID int) (int, error)
	// FirstChildID returns the lowest-id child owned by userID, or
	// ErrNoChildren when there is none.
	FirstChildID(ctx context.Context, userID int) (int, error)
}

// PostgresChildStore implements ChildStore on top of a pgx pool.
type PostgresChildStore struct {
	pool *pgxpool.Pool
}

// NewPostgresChildStore creates a PostgresChildStore.
func NewPostgresChildStore(pool *pgxpool.Pool) *PostgresChildStore {
	return &PostgresChildStore{pool: pool}
}

func (s *PostgresChildStore) OwnedChildID(ctx context.Context, childID, userID int) (int, error) {
	var id int
	// The ownership check is part of the query itself, so a child owned by
	// another user produces the same "no rows" as a missing one.
	query := `SELECT id FROM children WHERE id = $1 AND user_id = $2`
	err := s.pool.QueryRow(ctx, query, childID, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrChildNotFound
		}
		return 0, err
	}
	return id, nil
}

func (s *PostgresChildStore) FirstChildID(ctx context.Context, userID int) (int, error) {
	var id int
	query := `SELECT id FROM children WHERE user_id = $1 ORDER BY id ASC LIMIT 1`
	err := s.pool.QueryRow(ctx, query, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNoChildren
		}
		return 0, err
	}
	return id, nil
}
