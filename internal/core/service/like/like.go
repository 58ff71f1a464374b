package like

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

type likeService struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewLikeService creates a new like service
func NewLikeService(uow port.UnitOfWork, logger *slog.Logger) port.LikeService {
	return &likeService{uow: uow, logger: logger}
}

// Like records that the principal likes the video. Liking twice returns
// domain.ErrConflict.
func (s *likeService) Like(ctx context.Context, principal domain.Principal, videoID uuid.UUID) error {
	if _, err := s.uow.VideoRepo().FindByID(ctx, videoID); err != nil {
		return err
	}
	return s.uow.LikeRepo().Create(ctx, &domain.Like{VideoID: videoID, UserID: principal.UserID})
}

// Unlike removes the principal's like; absent likes return domain.ErrNotFound
func (s *likeService) Unlike(ctx context.Context, principal domain.Principal, videoID uuid.UUID) error {
	return s.uow.LikeRepo().Delete(ctx, videoID, principal.UserID)
}

// Count returns the number of likes on a video
func (s *likeService) Count(ctx context.Context, videoID uuid.UUID) (int64, error) {
	count, err := s.uow.LikeRepo().Count(ctx, videoID)
	if err != nil {
		return 0, fmt.Errorf("%w: counting likes: %w", domain.ErrPersistenceFailed, err)
	}
	return count, nil
}
