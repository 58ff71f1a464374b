package video

import (
	"context"
	"fmt"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Get returns a video joined with its owner's public profile. Unpublished
// videos are visible to their owner only.
func (s *videoService) Get(ctx context.Context, viewer *domain.Principal, videoID uuid.UUID) (*domain.VideoWithOwner, error) {
	video, err := s.uow.VideoRepo().FindByIDWithOwner(ctx, videoID)
	if err != nil {
		return nil, err
	}

	// Reported as not found so the id's existence is not revealed.
	if !video.Published {
		if viewer == nil || video.OwnerID.String() != viewer.UserID.String() {
			return nil, fmt.Errorf("%w: video %s", domain.ErrNotFound, videoID)
		}
	}

	return video, nil
}

// List returns published videos, paginated, optionally filtered by a search
// query and ordered by the requested sort key.
func (s *videoService) List(ctx context.Context, in port.ListVideosInput) ([]domain.VideoWithOwner, int64, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	videos, total, err := s.uow.VideoRepo().ListPublished(ctx, in.Query, in.Sort, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: listing videos: %w", domain.ErrPersistenceFailed, err)
	}
	return videos, total, nil
}

// RecordView bumps the view counter server-side. Views are never client-settable.
func (s *videoService) RecordView(ctx context.Context, videoID uuid.UUID) error {
	return s.uow.VideoRepo().IncrementViews(ctx, videoID)
}
