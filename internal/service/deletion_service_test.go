package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kinshare/internal/config"
	"kinshare/internal/domain"
	"kinshare/internal/service"
	"kinshare/mocks"
)

type deletionFixture struct {
	svc      service.DeletionService
	collRepo *mocks.MockCollectionRepo
	relRepo  *mocks.MockRelationRepo
	imgRepo  *mocks.MockImageRepo
	imgDir   *mocks.MockImageDirectory
	userDir  *mocks.MockUserDirectory
	storage  *mocks.MockObjectStorage
}

const testBucket = "kinshare-photos"

func setupDeletionService() *deletionFixture {
	f := &deletionFixture{
		collRepo: new(mocks.MockCollectionRepo),
		relRepo:  new(mocks.MockRelationRepo),
		imgRepo:  new(mocks.MockImageRepo),
		imgDir:   new(mocks.MockImageDirectory),
		userDir:  new(mocks.MockUserDirectory),
		storage:  new(mocks.MockObjectStorage),
	}
	f.svc = service.NewDeletionService(
		f.collRepo, f.relRepo, f.imgRepo, f.imgDir, f.userDir, f.storage,
		&config.S3Config{Bucket: testBucket},
	)
	return f
}

func TestDeletionService_NotFound_NoSideEffects(t *testing.T) {
	f := setupDeletionService()

	collectionID := uuid.New()
	f.collRepo.On("GetByID", mock.Anything, collectionID).Return(nil, domain.ErrCollectionNotFound)

	err := f.svc.DeleteCollection(context.Background(), collectionID)

	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	f.imgDir.AssertNotCalled(t, "ListOrphanedByCollection", mock.Anything, mock.Anything)
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	f.collRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeletionService_FullCascade(t *testing.T) {
	f := setupDeletionService()

	ownerID := uuid.New()
	memberID := uuid.New()
	collection := testCollection(ownerID, memberID)

	orphan := domain.Image{
		ID:           uuid.New(),
		OriginalKey:  "photos/orphan.jpg",
		ThumbnailKey: "thumbs/orphan.jpg",
	}

	f.collRepo.On("GetByID", mock.Anything, collection.ID).Return(collection, nil)
	f.imgDir.On("ListOrphanedByCollection", mock.Anything, collection.ID).Return([]domain.Image{orphan}, nil)
	f.storage.On("Delete", mock.Anything, testBucket, orphan.OriginalKey).Return(nil)
	f.storage.On("Delete", mock.Anything, testBucket, orphan.ThumbnailKey).Return(nil)
	f.imgRepo.On("Delete", mock.Anything, orphan.ID).Return(nil)
	f.userDir.On("RemoveFromCollection", mock.Anything, ownerID, collection.ID).Return(nil)
	f.userDir.On("RemoveFromCollection", mock.Anything, memberID, collection.ID).Return(nil)
	f.relRepo.On("DetachAll", mock.Anything, collection.ID).Return(nil)
	f.collRepo.On("Delete", mock.Anything, collection.ID).Return(nil)

	err := f.svc.DeleteCollection(context.Background(), collection.ID)

	assert.NoError(t, err)
	f.storage.AssertExpectations(t)
	f.imgRepo.AssertExpectations(t)
	f.userDir.AssertExpectations(t)
	f.relRepo.AssertExpectations(t)
	f.collRepo.AssertExpectations(t)
}

// An image shared with another collection never shows up in the orphan scan,
// so the cascade must not touch it.
func TestDeletionService_SharedImageUntouched(t *testing.T) {
	f := setupDeletionService()

	ownerID := uuid.New()
	collection := testCollection(ownerID)

	orphan := domain.Image{ID: uuid.New(), OriginalKey: "photos/only-trip.jpg"}
	shared := domain.Image{ID: uuid.New(), OriginalKey: "photos/also-reunion.jpg"}

	f.collRepo.On("GetByID", mock.Anything, collection.ID).Return(collection, nil)
	f.imgDir.On("ListOrphanedByCollection", mock.Anything, collection.ID).Return([]domain.Image{orphan}, nil)
	f.storage.On("Delete", mock.Anything, testBucket, orphan.OriginalKey).Return(nil)
	f.imgRepo.On("Delete", mock.Anything, orphan.ID).Return(nil)
	f.userDir.On("RemoveFromCollection", mock.Anything, ownerID, collection.ID).Return(nil)
	f.relRepo.On("DetachAll", mock.Anything, collection.ID).Return(nil)
	f.collRepo.On("Delete", mock.Anything, collection.ID).Return(nil)

	err := f.svc.DeleteCollection(context.Background(), collection.ID)

	assert.NoError(t, err)
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, testBucket, shared.OriginalKey)
	f.imgRepo.AssertNotCalled(t, "Delete", mock.Anything, shared.ID)
}

func TestDeletionService_PurgeFailureDoesNotAbort(t *testing.T) {
	f := setupDeletionService()

	ownerID := uuid.New()
	collection := testCollection(ownerID)

	broken := domain.Image{ID: uuid.New(), OriginalKey: "photos/broken.jpg"}
	healthy := domain.Image{ID: uuid.New(), OriginalKey: "photos/healthy.jpg"}

	f.collRepo.On("GetByID", mock.Anything, collection.ID).Return(collection, nil)
	f.imgDir.On("ListOrphanedByCollection", mock.Anything, collection.ID).
		Return([]domain.Image{broken, healthy}, nil)
	f.storage.On("Delete", mock.Anything, testBucket, broken.OriginalKey).Return(errors.New("s3 unavailable"))
	f.storage.On("Delete", mock.Anything, testBucket, healthy.OriginalKey).Return(nil)
	f.imgRepo.On("Delete", mock.Anything, healthy.ID).Return(nil)
	f.userDir.On("RemoveFromCollection", mock.Anything, ownerID, collection.ID).Return(nil)
	f.relRepo.On("DetachAll", mock.Anything, collection.ID).Return(nil)
	f.collRepo.On("Delete", mock.Anything, collection.ID).Return(nil)

	err := f.svc.DeleteCollection(context.Background(), collection.ID)

	assert.NoError(t, err)
	// The broken image keeps its row so it still points at the surviving blob.
	f.imgRepo.AssertNotCalled(t, "Delete", mock.Anything, broken.ID)
	f.collRepo.AssertExpectations(t)
}

func TestDeletionService_RowDeleteFailureDoesNotAbort(t *testing.T) {
	f := setupDeletionService()

	ownerID := uuid.New()
	collection := testCollection(ownerID)

	orphan := domain.Image{ID: uuid.New(), OriginalKey: "photos/orphan.jpg"}

	f.collRepo.On("GetByID", mock.Anything, collection.ID).Return(collection, nil)
	f.imgDir.On("ListOrphanedByCollection", mock.Anything, collection.ID).Return([]domain.Image{orphan}, nil)
	f.storage.On("Delete", mock.Anything, testBucket, orphan.OriginalKey).Return(nil)
	f.imgRepo.On("Delete", mock.Anything, orphan.ID).Return(errors.New("db error"))
	f.userDir.On("RemoveFromCollection", mock.Anything, ownerID, collection.ID).Return(nil)
	f.relRepo.On("DetachAll", mock.Anything, collection.ID).Return(nil)
	f.collRepo.On("Delete", mock.Anything, collection.ID).Return(nil)

	err := f.svc.DeleteCollection(context.Background(), collection.ID)

	assert.NoError(t, err)
	f.collRepo.AssertExpectations(t)
}

func TestDeletionService_DetachFailureDoesNotAbort(t *testing.T) {
	f := setupDeletionService()

	ownerID := uuid.New()
	memberID := uuid.New()
	collection := testCollection(ownerID, memberID)

	f.collRepo.On("GetByID", mock.Anything, collection.ID).Return(collection, nil)
	f.imgDir.On("ListOrphanedByCollection", mock.Anything, collection.ID).Return([]domain.Image{}, nil)
	f.userDir.On("RemoveFromCollection", mock.Anything, ownerID, collection.ID).Return(errors.New("directory down"))
	f.userDir.On("RemoveFromCollection", mock.Anything, memberID, collection.ID).Return(nil)
	f.relRepo.On("DetachAll", mock.Anything, collection.ID).Return(nil)
	f.collRepo.On("Delete", mock.Anything, collection.ID).Return(nil)

	err := f.svc.DeleteCollection(context.Background(), collection.ID)

	assert.NoError(t, err)
	f.userDir.AssertExpectations(t)
	f.collRepo.AssertExpectations(t)
}

func TestDeletionService_MissingThumbnailSkipsBlobDelete(t *testing.T) {
	f := setupDeletionService()

	ownerID := uuid.New()
	collection := testCollection(ownerID)

	orphan := domain.Image{ID: uuid.New(), OriginalKey: "photos/no-thumb.jpg"}

	f.collRepo.On("GetByID", mock.Anything, collection.ID).Return(collection, nil)
	f.imgDir.On("ListOrphanedByCollection", mock.Anything, collection.ID).Return([]domain.Image{orphan}, nil)
	f.storage.On("Delete", mock.Anything, testBucket, orphan.OriginalKey).Return(nil)
	f.imgRepo.On("Delete", mock.Anything, orphan.ID).Return(nil)
	f.userDir.On("RemoveFromCollection", mock.Anything, ownerID, collection.ID).Return(nil)
	f.relRepo.On("DetachAll", mock.Anything, collection.ID).Return(nil)
	f.collRepo.On("Delete", mock.Anything, collection.ID).Return(nil)

	err := f.svc.DeleteCollection(context.Background(), collection.ID)

	assert.NoError(t, err)
	f.storage.AssertNumberOfCalls(t, "Delete", 1)
}

func TestDeletionService_OrphanScanFailureSkipsPurge(t *testing.T) {
	f := setupDeletionService()

	ownerID := uuid.New()
	collection := testCollection(ownerID)

	f.collRepo.On("GetByID", mock.Anything, collection.ID).Return(collection, nil)
	f.imgDir.On("ListOrphanedByCollection", mock.Anything, collection.ID).
		Return(nil, errors.New("db error"))
	f.userDir.On("RemoveFromCollection", mock.Anything, ownerID, collection.ID).Return(nil)
	f.relRepo.On("DetachAll", mock.Anything, collection.ID).Return(nil)
	f.collRepo.On("Delete", mock.Anything, collection.ID).Return(nil)

	err := f.svc.DeleteCollection(context.Background(), collection.ID)

	assert.NoError(t, err)
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	f.collRepo.AssertExpectations(t)
}

func TestDeletionService_RecordDeleteFailurePropagates(t *testing.T) {
	f := setupDeletionService()

	ownerID := uuid.New()
	collection := testCollection(ownerID)

	f.collRepo.On("GetByID", mock.Anything, collection.ID).Return(collection, nil)
	f.imgDir.On("ListOrphanedByCollection", mock.Anything, collection.ID).Return([]domain.Image{}, nil)
	f.userDir.On("RemoveFromCollection", mock.Anything, ownerID, collection.ID).Return(nil)
	f.relRepo.On("DetachAll", mock.Anything, collection.ID).Return(nil)
	f.collRepo.On("Delete", mock.Anything, collection.ID).Return(errors.New("db error"))

	err := f.svc.DeleteCollection(context.Background(), collection.ID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "deleting collection")
}
