package whatsapp

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSender is a mock implementation of Sender using testify/mock.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendText(ctx context.Context, to, body string) error {
	args := m.Called(ctx, to, body)
	return args.Error(0)
}
