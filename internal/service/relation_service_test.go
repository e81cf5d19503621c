package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kinshare/internal/domain"
	"kinshare/internal/service"
	"kinshare/mocks"
)

func setupRelationService() (
	service.RelationService,
	*mocks.MockCollectionRepo,
	*mocks.MockRelationRepo,
) {
	collRepo := new(mocks.MockCollectionRepo)
	relRepo := new(mocks.MockRelationRepo)
	svc := service.NewRelationService(collRepo, relRepo)
	return svc, collRepo, relRepo
}

func TestRelationService_AddRelation_Success(t *testing.T) {
	svc, collRepo, relRepo := setupRelationService()

	trip := testCollection(uuid.New())
	reunion := testCollection(uuid.New())

	collRepo.On("GetByID", mock.Anything, trip.ID).Return(trip, nil)
	collRepo.On("GetByID", mock.Anything, reunion.ID).Return(reunion, nil)
	relRepo.On("Exists", mock.Anything, trip.ID, reunion.ID).Return(false, nil)
	relRepo.On("Link", mock.Anything, trip.ID, reunion.ID).Return(nil)

	err := svc.AddRelation(context.Background(), trip.ID, reunion.ID)

	assert.NoError(t, err)
	relRepo.AssertExpectations(t)
}

func TestRelationService_AddRelation_SelfRelationRejected(t *testing.T) {
	svc, collRepo, relRepo := setupRelationService()

	trip := testCollection(uuid.New())
	collRepo.On("GetByID", mock.Anything, trip.ID).Return(trip, nil)

	err := svc.AddRelation(context.Background(), trip.ID, trip.ID)

	assert.ErrorIs(t, err, domain.ErrSelfRelation)
	relRepo.AssertNotCalled(t, "Link", mock.Anything, mock.Anything, mock.Anything)
}

func TestRelationService_AddRelation_SourceMissing(t *testing.T) {
	svc, collRepo, _ := setupRelationService()

	missing := uuid.New()
	collRepo.On("GetByID", mock.Anything, missing).Return(nil, domain.ErrCollectionNotFound)

	err := svc.AddRelation(context.Background(), missing, uuid.New())

	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	assert.Contains(t, err.Error(), "collection "+missing.String())
}

func TestRelationService_AddRelation_TargetMissing(t *testing.T) {
	svc, collRepo, _ := setupRelationService()

	trip := testCollection(uuid.New())
	missing := uuid.New()
	collRepo.On("GetByID", mock.Anything, trip.ID).Return(trip, nil)
	collRepo.On("GetByID", mock.Anything, missing).Return(nil, domain.ErrCollectionNotFound)

	err := svc.AddRelation(context.Background(), trip.ID, missing)

	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
	assert.Contains(t, err.Error(), "related collection "+missing.String())
}

func TestRelationService_AddRelation_DuplicateConflict(t *testing.T) {
	svc, collRepo, relRepo := setupRelationService()

	trip := testCollection(uuid.New())
	reunion := testCollection(uuid.New())

	collRepo.On("GetByID", mock.Anything, trip.ID).Return(trip, nil)
	collRepo.On("GetByID", mock.Anything, reunion.ID).Return(reunion, nil)
	relRepo.On("Exists", mock.Anything, trip.ID, reunion.ID).Return(true, nil)

	err := svc.AddRelation(context.Background(), trip.ID, reunion.ID)

	assert.ErrorIs(t, err, domain.ErrAlreadyRelated)
	relRepo.AssertNotCalled(t, "Link", mock.Anything, mock.Anything, mock.Anything)
}

func TestRelationService_RemoveRelation_IdempotentTwice(t *testing.T) {
	svc, _, relRepo := setupRelationService()

	idA := uuid.New()
	idB := uuid.New()
	relRepo.On("Unlink", mock.Anything, idA, idB).Return(nil).Twice()

	assert.NoError(t, svc.RemoveRelation(context.Background(), idA, idB))
	assert.NoError(t, svc.RemoveRelation(context.Background(), idA, idB))
	relRepo.AssertExpectations(t)
}

func TestRelationService_ListRelated(t *testing.T) {
	svc, _, relRepo := setupRelationService()

	collectionID := uuid.New()
	expected := []domain.RelatedCollection{
		{ID: uuid.New(), Name: "Reunion", MemberCount: 3},
		{ID: uuid.New(), Name: "Trip", MemberCount: 1},
	}
	relRepo.On("ListRelated", mock.Anything, collectionID).Return(expected, nil)

	related, err := svc.ListRelated(context.Background(), collectionID)

	assert.NoError(t, err)
	assert.Equal(t, expected, related)
}
