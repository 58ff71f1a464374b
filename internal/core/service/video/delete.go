package video

import (
	"context"
	"errors"
	"fmt"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

// Delete removes a video together with its comments and likes in a single
// transaction, after a best-effort removal of the remote assets. Orphaned
// remote assets are acceptable, orphaned database rows are not. Deleting an
// already deleted id returns domain.ErrNotFound.
func (s *videoService) Delete(ctx context.Context, principal domain.Principal, videoID uuid.UUID) error {
	video, err := s.uow.VideoRepo().FindByID(ctx, videoID)
	if err != nil {
		return err
	}
	if err := AssertOwner(video, principal); err != nil {
		return err
	}

	// Both remote deletes are attempted even if the first fails.
	if err := s.media.Delete(ctx, video.MediaRef, domain.MediaKindVideo); err != nil {
		s.logger.Error("remote video delete failed", "ref", video.MediaRef, "error", err)
	}
	if video.ThumbnailRef != nil {
		if err := s.media.Delete(ctx, *video.ThumbnailRef, domain.MediaKindImage); err != nil {
			s.logger.Error("remote thumbnail delete failed", "ref", *video.ThumbnailRef, "error", err)
		}
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.CommentRepo().DeleteByVideoID(ctx, videoID); err != nil {
			return err
		}
		if err := uow.LikeRepo().DeleteByVideoID(ctx, videoID); err != nil {
			return err
		}
		return uow.VideoRepo().Delete(ctx, videoID)
	})
	if txErr != nil {
		// Lost a race with a concurrent delete of the same id.
		if errors.Is(txErr, domain.ErrNotFound) {
			return txErr
		}
		return fmt.Errorf("%w: deleting video %s: %w", domain.ErrPersistenceFailed, videoID, txErr)
	}

	s.emit(ctx, domain.EventTypeVideoDeleted, video)

	return nil
}
