package like

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLikeService is a mock implementation of LikeService
type MockLikeService struct {
	mock.Mock
}

// NewMockLikeService creates a new MockLikeService
func NewMockLikeService() *MockLikeService {
	return &MockLikeService{}
}

func (m *MockLikeService) Like(ctx context.Context, principal domain.Principal, videoID uuid.UUID) error {
	args := m.Called(ctx, principal, videoID)
	return args.Error(0)
}

func (m *MockLikeService) Unlike(ctx context.Context, principal domain.Principal, videoID uuid.UUID) error {
	args := m.Called(ctx, principal, videoID)
	return args.Error(0)
}

func (m *MockLikeService) Count(ctx context.Context, videoID uuid.UUID) (int64, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(int64), args.Error(1)
}
