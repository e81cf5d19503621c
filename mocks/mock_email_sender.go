package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendMemberAddedEmail(ctx context.Context, toEmail, toName, collectionName string) error {
	args := m.Called(ctx, toEmail, toName, collectionName)
	return args.Error(0)
}
