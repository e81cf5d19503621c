package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"kinshare/internal/config"
	"kinshare/internal/port"
)

// DeletionService runs the destructive cascade that removes a collection
// together with its exclusively-owned media, membership records, and relation
// entries.
//
// Once the collection has been loaded, the cascade only moves forward: media
// purge and member detach failures are logged and counted but never abort the
// deletion. A collection must stay removable even when some of its cleanup
// cannot complete.
type DeletionService interface {
	DeleteCollection(ctx context.Context, collectionID uuid.UUID) error
}

type deletionService struct {
	collectionRepo port.CollectionRepository
	relationRepo   port.RelationRepository
	imageRepo      port.ImageRepository
	imageDir       port.ImageDirectory
	userDir        port.UserDirectory
	storage        port.ObjectStorage
	cfg            *config.S3Config
}

// NewDeletionService creates a new DeletionService implementation.
func NewDeletionService(
	collectionRepo port.CollectionRepository,
	relationRepo port.RelationRepository,
	imageRepo port.ImageRepository,
	imageDir port.ImageDirectory,
	userDir port.UserDirectory,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) DeletionService {
	return &deletionService{
		collectionRepo: collectionRepo,
		relationRepo:   relationRepo,
		imageRepo:      imageRepo,
		imageDir:       imageDir,
		userDir:        userDir,
		storage:        storage,
		cfg:            cfg,
	}
}

func (s *deletionService) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	// Loading. The only stage that can fail the whole operation.
	collection, err := s.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}

	// OrphanScan: images owned by this collection and nothing else. A scan
	// failure skips the purge but does not stop the cascade.
	orphans, err := s.imageDir.ListOrphanedByCollection(ctx, collectionID)
	if err != nil {
		log.Printf("deletionService.DeleteCollection: orphan scan for %s failed, skipping media purge: %v", collectionID, err)
		orphans = nil
	}

	log.Printf("deletionService.DeleteCollection: deleting %s (%q), %d orphaned images, %d members",
		collectionID, collection.Name, len(orphans), len(collection.Members))

	// MediaPurge: per image, blobs first, then the row. Each image is
	// independent; a failure skips that image and moves on.
	purgeFailures := 0
	for _, img := range orphans {
		if err := s.purgeImage(ctx, img.ID, img.OriginalKey, img.ThumbnailKey); err != nil {
			log.Printf("deletionService.DeleteCollection: purge of image %s failed: %v", img.ID, err)
			purgeFailures++
		}
	}

	// MemberDetach: best-effort, same forward-progress policy as the purge.
	detachFailures := 0
	for _, userID := range collection.Members {
		if err := s.userDir.RemoveFromCollection(ctx, userID, collectionID); err != nil {
			log.Printf("deletionService.DeleteCollection: detaching user %s failed: %v", userID, err)
			detachFailures++
		}
	}

	// Scrub this id out of every neighbour's adjacency list before the row
	// goes away; the join rows themselves fall to the FK cascade.
	if err := s.relationRepo.DetachAll(ctx, collectionID); err != nil {
		log.Printf("deletionService.DeleteCollection: relation scrub for %s failed: %v", collectionID, err)
	}

	// RecordDelete: membership and relation join rows cascade at the
	// storage layer.
	if err := s.collectionRepo.Delete(ctx, collectionID); err != nil {
		return fmt.Errorf("deleting collection %s: %w", collectionID, err)
	}

	if purgeFailures > 0 || detachFailures > 0 {
		log.Printf("deletionService.DeleteCollection: %s deleted with partial cleanup: %d purge failures, %d detach failures",
			collectionID, purgeFailures, detachFailures)
	}
	return nil
}

// purgeImage deletes an image's blobs and then its row. A blob failure stops
// the purge of this image so the row keeps pointing at whatever is left.
func (s *deletionService) purgeImage(ctx context.Context, imageID uuid.UUID, originalKey, thumbnailKey string) error {
	if originalKey != "" {
		if err := s.storage.Delete(ctx, s.cfg.Bucket, originalKey); err != nil {
			return fmt.Errorf("deleting original blob %s: %w", originalKey, err)
		}
	}
	if thumbnailKey != "" {
		if err := s.storage.Delete(ctx, s.cfg.Bucket, thumbnailKey); err != nil {
			return fmt.Errorf("deleting thumbnail blob %s: %w", thumbnailKey, err)
		}
	}
	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("deleting image row: %w", err)
	}
	return nil
}
