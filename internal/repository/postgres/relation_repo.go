package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kinshare/internal/domain"
	"kinshare/internal/port"
)

type relationRepo struct {
	db *sqlx.DB
}

// NewRelationRepo creates a new PostgreSQL-backed RelationRepository.
func NewRelationRepo(db *sqlx.DB) port.RelationRepository {
	return &relationRepo{db: db}
}

// Exists checks the join table for the pair in either orientation.
func (r *relationRepo) Exists(ctx context.Context, idA, idB uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (
		   SELECT 1 FROM collection_relations
		   WHERE (collection_id_1 = $1 AND collection_id_2 = $2)
		      OR (collection_id_1 = $2 AND collection_id_2 = $1)
		 )`,
		idA, idB)
	if err != nil {
		return false, fmt.Errorf("relationRepo.Exists: %w", err)
	}
	return exists, nil
}

// Link inserts one join row for the unordered pair and appends each id to the
// other side's related_collections array. The appends are guarded per side so
// a partially-synced prior state self-heals instead of duplicating entries.
func (r *relationRepo) Link(ctx context.Context, idA, idB uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("relationRepo.Link begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO collection_relations (collection_id_1, collection_id_2) VALUES ($1, $2)",
		idA, idB)
	if err != nil {
		return fmt.Errorf("relationRepo.Link row: %w", err)
	}

	now := time.Now().UTC()
	for _, pair := range [][2]uuid.UUID{{idA, idB}, {idB, idA}} {
		_, err = tx.ExecContext(ctx,
			`UPDATE collections
			 SET related_collections = array_append(related_collections, $2), updated_at = $3
			 WHERE id = $1 AND NOT related_collections @> ARRAY[$2]::uuid[]`,
			pair[0], pair[1], now)
		if err != nil {
			return fmt.Errorf("relationRepo.Link array %s: %w", pair[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("relationRepo.Link commit: %w", err)
	}
	return nil
}

// Unlink deletes the join row matching either orientation and scrubs both
// arrays. Unlinking a pair that is not related is not an error.
func (r *relationRepo) Unlink(ctx context.Context, idA, idB uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("relationRepo.Unlink begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM collection_relations
		 WHERE (collection_id_1 = $1 AND collection_id_2 = $2)
		    OR (collection_id_1 = $2 AND collection_id_2 = $1)`,
		idA, idB)
	if err != nil {
		return fmt.Errorf("relationRepo.Unlink row: %w", err)
	}

	now := time.Now().UTC()
	for _, pair := range [][2]uuid.UUID{{idA, idB}, {idB, idA}} {
		_, err = tx.ExecContext(ctx,
			`UPDATE collections
			 SET related_collections = array_remove(related_collections, $2), updated_at = $3
			 WHERE id = $1 AND related_collections @> ARRAY[$2]::uuid[]`,
			pair[0], pair[1], now)
		if err != nil {
			return fmt.Errorf("relationRepo.Unlink array %s: %w", pair[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("relationRepo.Unlink commit: %w", err)
	}
	return nil
}

func (r *relationRepo) ListRelated(ctx context.Context, collectionID uuid.UUID) ([]domain.RelatedCollection, error) {
	var related []domain.RelatedCollection
	err := r.db.SelectContext(ctx, &related,
		`SELECT c.id, c.name, cardinality(c.members) AS member_count
		 FROM collections c
		 INNER JOIN collection_relations cr
		   ON (cr.collection_id_1 = $1 AND cr.collection_id_2 = c.id)
		   OR (cr.collection_id_2 = $1 AND cr.collection_id_1 = c.id)
		 WHERE c.id != $1
		 ORDER BY c.name`,
		collectionID)
	if err != nil {
		return nil, fmt.Errorf("relationRepo.ListRelated: %w", err)
	}
	return related, nil
}

// DetachAll removes collectionID from every other collection's
// related_collections array. Join rows are left to the FK cascade.
func (r *relationRepo) DetachAll(ctx context.Context, collectionID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE collections
		 SET related_collections = array_remove(related_collections, $1), updated_at = $2
		 WHERE related_collections @> ARRAY[$1]::uuid[]`,
		collectionID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("relationRepo.DetachAll: %w", err)
	}
	return nil
}
