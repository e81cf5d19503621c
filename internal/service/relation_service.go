package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"kinshare/internal/domain"
	"kinshare/internal/port"
)

// RelationService maintains the symmetric "related collections" graph: a join
// table of unordered pairs mirrored into both collections' adjacency lists.
type RelationService interface {
	ListRelated(ctx context.Context, collectionID uuid.UUID) ([]domain.RelatedCollection, error)
	AddRelation(ctx context.Context, idA, idB uuid.UUID) error
	RemoveRelation(ctx context.Context, idA, idB uuid.UUID) error
}

type relationService struct {
	collectionRepo port.CollectionRepository
	relationRepo   port.RelationRepository
}

// NewRelationService creates a new RelationService implementation.
func NewRelationService(
	collectionRepo port.CollectionRepository,
	relationRepo port.RelationRepository,
) RelationService {
	return &relationService{
		collectionRepo: collectionRepo,
		relationRepo:   relationRepo,
	}
}

func (s *relationService) ListRelated(ctx context.Context, collectionID uuid.UUID) ([]domain.RelatedCollection, error) {
	related, err := s.relationRepo.ListRelated(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("listing related collections of %s: %w", collectionID, err)
	}
	return related, nil
}

func (s *relationService) AddRelation(ctx context.Context, idA, idB uuid.UUID) error {
	// Each side's absence is reported distinctly for diagnostics.
	if _, err := s.collectionRepo.GetByID(ctx, idA); err != nil {
		return fmt.Errorf("collection %s: %w", idA, err)
	}
	if _, err := s.collectionRepo.GetByID(ctx, idB); err != nil {
		return fmt.Errorf("related collection %s: %w", idB, err)
	}

	if idA == idB {
		return domain.ErrSelfRelation
	}

	exists, err := s.relationRepo.Exists(ctx, idA, idB)
	if err != nil {
		return fmt.Errorf("checking relation %s<->%s: %w", idA, idB, err)
	}
	if exists {
		return domain.ErrAlreadyRelated
	}

	log.Printf("relationService.AddRelation: linking %s <-> %s", idA, idB)
	if err := s.relationRepo.Link(ctx, idA, idB); err != nil {
		return fmt.Errorf("linking %s<->%s: %w", idA, idB, err)
	}
	return nil
}

// RemoveRelation is idempotent: removing a pair that is not related succeeds
// and leaves both adjacency lists without the other id.
func (s *relationService) RemoveRelation(ctx context.Context, idA, idB uuid.UUID) error {
	log.Printf("relationService.RemoveRelation: unlinking %s <-> %s", idA, idB)
	if err := s.relationRepo.Unlink(ctx, idA, idB); err != nil {
		return fmt.Errorf("unlinking %s<->%s: %w", idA, idB, err)
	}
	return nil
}
