package port

import (
	"context"

	"github.com/google/uuid"

	"kinshare/internal/domain"
)

// UserDirectory maintains each user's personal list of collection
// memberships. Both operations are idempotent.
type UserDirectory interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	AddToCollection(ctx context.Context, userID, collectionID uuid.UUID) error
	RemoveFromCollection(ctx context.Context, userID, collectionID uuid.UUID) error
}

// ImageDirectory answers ownership questions about images.
type ImageDirectory interface {
	// ListOrphanedByCollection returns exactly the images whose only owning
	// collection is collectionID. Images shared with any other collection,
	// or attached to none, are excluded.
	ListOrphanedByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Image, error)
}
