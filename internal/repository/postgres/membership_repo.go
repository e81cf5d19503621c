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

type membershipRepo struct {
	db *sqlx.DB
}

// NewMembershipRepo creates a new PostgreSQL-backed MembershipRepository.
func NewMembershipRepo(db *sqlx.DB) port.MembershipRepository {
	return &membershipRepo{db: db}
}

// Add inserts the membership row and appends the user to the collection's
// members array in one transaction. The insert tolerates duplicates and the
// array append is guarded, so a partially-synced prior state self-heals.
func (r *membershipRepo) Add(ctx context.Context, collectionID, userID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("membershipRepo.Add begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO collection_members (collection_id, user_id, joined_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (collection_id, user_id) DO NOTHING`,
		collectionID, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("membershipRepo.Add row: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE collections
		 SET members = array_append(members, $2), updated_at = $3
		 WHERE id = $1 AND NOT members @> ARRAY[$2]::uuid[]`,
		collectionID, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("membershipRepo.Add members array: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("membershipRepo.Add commit: %w", err)
	}
	return nil
}

// Remove deletes the membership row and removes the user from the members
// array in one transaction. Removing an absent member is a no-op.
func (r *membershipRepo) Remove(ctx context.Context, collectionID, userID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("membershipRepo.Remove begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM collection_members WHERE collection_id = $1 AND user_id = $2",
		collectionID, userID)
	if err != nil {
		return fmt.Errorf("membershipRepo.Remove row: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE collections
		 SET members = array_remove(members, $2), updated_at = $3
		 WHERE id = $1 AND members @> ARRAY[$2]::uuid[]`,
		collectionID, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("membershipRepo.Remove members array: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("membershipRepo.Remove commit: %w", err)
	}
	return nil
}

func (r *membershipRepo) ListMembers(ctx context.Context, collectionID uuid.UUID) ([]domain.MemberRow, error) {
	var rows []domain.MemberRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT u.id, u.email, u.first_name, u.last_name, u.birthday, cm.joined_at
		 FROM collection_members cm
		 INNER JOIN users u ON u.id = cm.user_id
		 WHERE cm.collection_id = $1
		 ORDER BY u.first_name, u.last_name`,
		collectionID)
	if err != nil {
		return nil, fmt.Errorf("membershipRepo.ListMembers: %w", err)
	}
	return rows, nil
}
