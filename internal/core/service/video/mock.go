package video

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVideoService is a mock implementation of VideoService
type MockVideoService struct {
	mock.Mock
}

// NewMockVideoService creates a new MockVideoService
func NewMockVideoService() *MockVideoService {
	return &MockVideoService{}
}

func (m *MockVideoService) Publish(ctx context.Context, principal domain.Principal, in port.PublishVideoInput) (*domain.Video, error) {
	args := m.Called(ctx, principal, in)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) Delete(ctx context.Context, principal domain.Principal, videoID uuid.UUID) error {
	args := m.Called(ctx, principal, videoID)
	return args.Error(0)
}

func (m *MockVideoService) UpdateMetadata(ctx context.Context, principal domain.Principal, videoID uuid.UUID, in port.UpdateVideoInput) (*domain.Video, error) {
	args := m.Called(ctx, principal, videoID, in)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) ReplaceThumbnail(ctx context.Context, principal domain.Principal, videoID uuid.UUID, thumbnail *domain.StagedFile) (*domain.Video, error) {
	args := m.Called(ctx, principal, videoID, thumbnail)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) Get(ctx context.Context, viewer *domain.Principal, videoID uuid.UUID) (*domain.VideoWithOwner, error) {
	args := m.Called(ctx, viewer, videoID)
	return args.Get(0).(*domain.VideoWithOwner), args.Error(1)
}

func (m *MockVideoService) List(ctx context.Context, in port.ListVideosInput) ([]domain.VideoWithOwner, int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).([]domain.VideoWithOwner), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoService) ListByOwner(ctx context.Context, viewer *domain.Principal, ownerID uuid.UUID, in port.ListVideosInput) ([]domain.Video, int64, error) {
	args := m.Called(ctx, viewer, ownerID, in)
	return args.Get(0).([]domain.Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoService) RecordView(ctx context.Context, videoID uuid.UUID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}
