package staging

import (
	"io"
	"time"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockStagingArea struct {
	mock.Mock
}

func NewMockStagingArea() *MockStagingArea {
	return &MockStagingArea{}
}

func (m *MockStagingArea) Stage(r io.Reader, originalName, contentType string) (*domain.StagedFile, error) {
	args := m.Called(r, originalName, contentType)
	return args.Get(0).(*domain.StagedFile), args.Error(1)
}

func (m *MockStagingArea) Discard(f *domain.StagedFile) error {
	args := m.Called(f)
	return args.Error(0)
}

func (m *MockStagingArea) Sweep(olderThan time.Time) (int, error) {
	args := m.Called(olderThan)
	return args.Int(0), args.Error(1)
}
