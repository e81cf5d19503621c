package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kinshare/internal/domain"
)

// MockUserDirectory is a mock implementation of port.UserDirectory.
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserDirectory) AddToCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	args := m.Called(ctx, userID, collectionID)
	return args.Error(0)
}

func (m *MockUserDirectory) RemoveFromCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	args := m.Called(ctx, userID, collectionID)
	return args.Error(0)
}
