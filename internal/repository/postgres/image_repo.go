package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kinshare/internal/domain"
	"kinshare/internal/port"
)

// ImageRepo is the PostgreSQL-backed image store. It implements both
// port.ImageRepository and port.ImageDirectory (the orphan query used by the
// deletion cascade).
type ImageRepo struct {
	db *sqlx.DB
}

var (
	_ port.ImageRepository = (*ImageRepo)(nil)
	_ port.ImageDirectory  = (*ImageRepo)(nil)
)

// NewImageRepo creates a new PostgreSQL-backed ImageRepo.
func NewImageRepo(db *sqlx.DB) *ImageRepo {
	return &ImageRepo{db: db}
}

func (r *ImageRepo) GetByID(ctx context.Context, imageID uuid.UUID) (*domain.Image, error) {
	var img domain.Image
	err := r.db.GetContext(ctx, &img,
		"SELECT * FROM images WHERE id = $1", imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("imageRepo.GetByID: %w", err)
	}
	return &img, nil
}

func (r *ImageRepo) Delete(ctx context.Context, imageID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM images WHERE id = $1", imageID)
	if err != nil {
		return fmt.Errorf("imageRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

// ListOrphanedByCollection returns the images whose association set is
// exactly {collectionID}: attached to it, and to nothing else. Images with no
// associations at all are not orphans of anyone.
func (r *ImageRepo) ListOrphanedByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Image, error) {
	var images []domain.Image
	err := r.db.SelectContext(ctx, &images,
		`SELECT i.* FROM images i
		 WHERE EXISTS (
		   SELECT 1 FROM image_collections ic
		   WHERE ic.image_id = i.id AND ic.collection_id = $1
		 )
		 AND NOT EXISTS (
		   SELECT 1 FROM image_collections ic
		   WHERE ic.image_id = i.id AND ic.collection_id != $1
		 )`,
		collectionID)
	if err != nil {
		return nil, fmt.Errorf("imageRepo.ListOrphanedByCollection: %w", err)
	}
	return images, nil
}
