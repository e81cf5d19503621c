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

type collectionRepo struct {
	db *sqlx.DB
}

// NewCollectionRepo creates a new PostgreSQL-backed CollectionRepository.
func NewCollectionRepo(db *sqlx.DB) port.CollectionRepository {
	return &collectionRepo{db: db}
}

func (r *collectionRepo) Create(ctx context.Context, c *domain.Collection) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("collectionRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO collections (id, name, owner_id, members, related_collections, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.OwnerID, c.Members, c.RelatedCollections, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("collectionRepo.Create: %w", err)
	}

	// The owner's membership row is born with the collection.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO collection_members (collection_id, user_id, joined_at) VALUES ($1, $2, $3)`,
		c.ID, c.OwnerID, now)
	if err != nil {
		return fmt.Errorf("collectionRepo.Create owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("collectionRepo.Create commit: %w", err)
	}
	return nil
}

func (r *collectionRepo) GetByID(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	var c domain.Collection
	err := r.db.GetContext(ctx, &c,
		"SELECT * FROM collections WHERE id = $1", collectionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("collectionRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *collectionRepo) Exists(ctx context.Context, collectionID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM collections WHERE id = $1)", collectionID)
	if err != nil {
		return false, fmt.Errorf("collectionRepo.Exists: %w", err)
	}
	return exists, nil
}

func (r *collectionRepo) UpdateName(ctx context.Context, collectionID uuid.UUID, name string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE collections SET name = $1, updated_at = $2 WHERE id = $3",
		name, time.Now().UTC(), collectionID)
	if err != nil {
		return fmt.Errorf("collectionRepo.UpdateName: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCollectionNotFound
	}
	return nil
}

// Delete removes the collection row. Membership rows, relation rows, and
// image associations referencing it go with it via ON DELETE CASCADE.
func (r *collectionRepo) Delete(ctx context.Context, collectionID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM collections WHERE id = $1", collectionID)
	if err != nil {
		return fmt.Errorf("collectionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCollectionNotFound
	}
	return nil
}
