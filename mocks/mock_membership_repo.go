package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"kinshare/internal/domain"
)

// MockMembershipRepo is a mock implementation of port.MembershipRepository.
type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) Add(ctx context.Context, collectionID, userID uuid.UUID) error {
	args := m.Called(ctx, collectionID, userID)
	return args.Error(0)
}

func (m *MockMembershipRepo) Remove(ctx context.Context, collectionID, userID uuid.UUID) error {
	args := m.Called(ctx, collectionID, userID)
	return args.Error(0)
}

func (m *MockMembershipRepo) ListMembers(ctx context.Context, collectionID uuid.UUID) ([]domain.MemberRow, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberRow), args.Error(1)
}
