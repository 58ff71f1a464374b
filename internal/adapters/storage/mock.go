package storage

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockMediaStore struct {
	mock.Mock
}

func NewMockMediaStore() *MockMediaStore {
	return &MockMediaStore{}
}

func (m *MockMediaStore) Upload(ctx context.Context, localPath string, kind domain.MediaKind) (*domain.MediaObject, error) {
	args := m.Called(ctx, localPath, kind)
	return args.Get(0).(*domain.MediaObject), args.Error(1)
}

func (m *MockMediaStore) Delete(ctx context.Context, ref string, kind domain.MediaKind) error {
	args := m.Called(ctx, ref, kind)
	return args.Error(0)
}
