package cleanup_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/NomanKhan13/focusTube/internal/adapters/staging"
	"github.com/NomanKhan13/focusTube/internal/core/service/cleanup"

	"github.com/stretchr/testify/assert"
)

func TestCleanupService_SweepStaging_UsesConfiguredTTL(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStaging := staging.NewMockStagingArea()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := cleanup.NewCleanupService(mockStaging, time.Hour, logger)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockStaging.On("Sweep", now.Add(-time.Hour)).Return(3, nil)

	// Act
	err := service.SweepStaging(ctx, now)

	// Assert
	assert.NoError(t, err)
	mockStaging.AssertExpectations(t)
}

func TestCleanupService_SweepStaging_PropagatesError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStaging := staging.NewMockStagingArea()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := cleanup.NewCleanupService(mockStaging, time.Hour, logger)

	now := time.Now()
	mockStaging.On("Sweep", now.Add(-time.Hour)).Return(0, errors.New("permission denied"))

	// Act
	err := service.SweepStaging(ctx, now)

	// Assert
	assert.Error(t, err)
}
