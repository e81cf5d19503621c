package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kinshare/internal/domain"
)

// MockRelationRepo is a mock implementation of port.RelationRepository.
type MockRelationRepo struct {
	mock.Mock
}

func (m *MockRelationRepo) Exists(ctx context.Context, idA, idB uuid.UUID) (bool, error) {
	args := m.Called(ctx, idA, idB)
	return args.Bool(0), args.Error(1)
}

func (m *MockRelationRepo) Link(ctx context.Context, idA, idB uuid.UUID) error {
	args := m.Called(ctx, idA, idB)
	return args.Error(0)
}

func (m *MockRelationRepo) Unlink(ctx context.Context, idA, idB uuid.UUID) error {
	args := m.Called(ctx, idA, idB)
	return args.Error(0)
}

func (m *MockRelationRepo) ListRelated(ctx context.Context, collectionID uuid.UUID) ([]domain.RelatedCollection, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RelatedCollection), args.Error(1)
}

func (m *MockRelationRepo) DetachAll(ctx context.Context, collectionID uuid.UUID) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}
