package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kinshare/internal/domain"
	"kinshare/internal/port"
)

type userDirectoryRepo struct {
	db *sqlx.DB
}

// NewUserDirectoryRepo creates a PostgreSQL-backed UserDirectory that keeps
// each user's personal collection list on the users row.
func NewUserDirectoryRepo(db *sqlx.DB) port.UserDirectory {
	return &userDirectoryRepo{db: db}
}

func (r *userDirectoryRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u,
		"SELECT * FROM users WHERE id = $1", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("userDirectoryRepo.GetByID: %w", err)
	}
	return &u, nil
}

// AddToCollection is idempotent: the append is guarded on membership.
func (r *userDirectoryRepo) AddToCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET collections = array_append(collections, $2), updated_at = $3
		 WHERE id = $1 AND NOT collections @> ARRAY[$2]::uuid[]`,
		userID, collectionID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("userDirectoryRepo.AddToCollection: %w", err)
	}
	return nil
}

// RemoveFromCollection is idempotent: removing an id that is not present
// affects no rows.
func (r *userDirectoryRepo) RemoveFromCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET collections = array_remove(collections, $2), updated_at = $3
		 WHERE id = $1 AND collections @> ARRAY[$2]::uuid[]`,
		userID, collectionID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("userDirectoryRepo.RemoveFromCollection: %w", err)
	}
	return nil
}
