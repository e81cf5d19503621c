package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kinshare/internal/domain"
)

// MockImageRepo is a mock implementation of port.ImageRepository.
type MockImageRepo struct {
	mock.Mock
}

func (m *MockImageRepo) GetByID(ctx context.Context, imageID uuid.UUID) (*domain.Image, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Image), args.Error(1)
}

func (m *MockImageRepo) Delete(ctx context.Context, imageID uuid.UUID) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

// MockImageDirectory is a mock implementation of port.ImageDirectory.
type MockImageDirectory struct {
	mock.Mock
}

func (m *MockImageDirectory) ListOrphanedByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Image, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Image), args.Error(1)
}
