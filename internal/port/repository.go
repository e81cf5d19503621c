package port

import (
	"context"

	"github.com/google/uuid"

	"kinshare/internal/domain"
)

// CollectionRepository defines row-level persistence for collections.
type CollectionRepository interface {
	Create(ctx context.Context, c *domain.Collection) error
	GetByID(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)
	Exists(ctx context.Context, collectionID uuid.UUID) (bool, error)
	UpdateName(ctx context.Context, collectionID uuid.UUID, name string) error
	Delete(ctx context.Context, collectionID uuid.UUID) error
}

// MembershipRepository keeps the collection_members join table and the
// denormalized members array on the collection row in step. Each mutation is
// atomic: the join-row write and the array rewrite happen in one transaction.
type MembershipRepository interface {
	Add(ctx context.Context, collectionID, userID uuid.UUID) error
	Remove(ctx context.Context, collectionID, userID uuid.UUID) error
	ListMembers(ctx context.Context, collectionID uuid.UUID) ([]domain.MemberRow, error)
}

// RelationRepository maintains the symmetric collection relation graph:
// unordered join-table pairs mirrored into both collections'
// related_collections arrays.
type RelationRepository interface {
	Exists(ctx context.Context, idA, idB uuid.UUID) (bool, error)
	Link(ctx context.Context, idA, idB uuid.UUID) error
	Unlink(ctx context.Context, idA, idB uuid.UUID) error
	ListRelated(ctx context.Context, collectionID uuid.UUID) ([]domain.RelatedCollection, error)
	DetachAll(ctx context.Context, collectionID uuid.UUID) error
}

// ImageRepository defines persistence for image metadata rows.
type ImageRepository interface {
	GetByID(ctx context.Context, imageID uuid.UUID) (*domain.Image, error)
	Delete(ctx context.Context, imageID uuid.UUID) error
}
