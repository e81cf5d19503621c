package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kinshare/internal/domain"
	"kinshare/internal/service"
)

// MockMembershipService is a mock implementation of service.MembershipService.
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) Create(ctx context.Context, input service.CreateCollectionInput) (*domain.Collection, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collection), args.Error(1)
}

func (m *MockMembershipService) GetByID(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collection), args.Error(1)
}

func (m *MockMembershipService) Update(ctx context.Context, collectionID uuid.UUID, input service.UpdateCollectionInput) (*domain.Collection, error) {
	args := m.Called(ctx, collectionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collection), args.Error(1)
}

func (m *MockMembershipService) Exists(ctx context.Context, collectionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, collectionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMembershipService) AddMember(ctx context.Context, collectionID, userID uuid.UUID) error {
	args := m.Called(ctx, collectionID, userID)
	return args.Error(0)
}

func (m *MockMembershipService) RemoveMember(ctx context.Context, collectionID, userID uuid.UUID) error {
	args := m.Called(ctx, collectionID, userID)
	return args.Error(0)
}

func (m *MockMembershipService) ListMembers(ctx context.Context, collectionID uuid.UUID) ([]domain.Member, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

// MockRelationService is a mock implementation of service.RelationService.
type MockRelationService struct {
	mock.Mock
}

func (m *MockRelationService) ListRelated(ctx context.Context, collectionID uuid.UUID) ([]domain.RelatedCollection, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RelatedCollection), args.Error(1)
}

func (m *MockRelationService) AddRelation(ctx context.Context, idA, idB uuid.UUID) error {
	args := m.Called(ctx, idA, idB)
	return args.Error(0)
}

func (m *MockRelationService) RemoveRelation(ctx context.Context, idA, idB uuid.UUID) error {
	args := m.Called(ctx, idA, idB)
	return args.Error(0)
}

// MockDeletionService is a mock implementation of service.DeletionService.
type MockDeletionService struct {
	mock.Mock
}

func (m *MockDeletionService) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

// MockImageService is a mock implementation of service.ImageService.
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) GetDownloadURL(ctx context.Context, imageID uuid.UUID) (string, error) {
	args := m.Called(ctx, imageID)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) GetThumbnailURL(ctx context.Context, imageID uuid.UUID) (string, error) {
	args := m.Called(ctx, imageID)
	return args.String(0), args.Error(1)
}
