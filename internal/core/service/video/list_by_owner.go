package video

import (
	"context"
	"fmt"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

// ListByOwner returns one channel's videos, paginated. The owner sees their
// drafts; everyone else sees published videos only.
func (s *videoService) ListByOwner(ctx context.Context, viewer *domain.Principal, ownerID uuid.UUID, in port.ListVideosInput) ([]domain.Video, int64, error) {
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

	includeUnpublished := viewer != nil && viewer.UserID.String() == ownerID.String()

	videos, total, err := s.uow.VideoRepo().ListByOwner(ctx, ownerID, includeUnpublished, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: listing channel videos: %w", domain.ErrPersistenceFailed, err)
	}
	return videos, total, nil
}
