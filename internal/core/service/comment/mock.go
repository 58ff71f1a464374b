package comment

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	mock.Mock
}

// NewMockCommentService creates a new MockCommentService
func NewMockCommentService() *MockCommentService {
	return &MockCommentService{}
}

func (m *MockCommentService) Create(ctx context.Context, principal domain.Principal, videoID uuid.UUID, body string) (*domain.Comment, error) {
	args := m.Called(ctx, principal, videoID, body)
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]domain.CommentWithAuthor, error) {
	args := m.Called(ctx, videoID, page, limit)
	return args.Get(0).([]domain.CommentWithAuthor), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, principal domain.Principal, commentID uuid.UUID) error {
	args := m.Called(ctx, principal, commentID)
	return args.Error(0)
}
