package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
)

// ReplaceThumbnail swaps the thumbnail of an owned video. The new asset is
// uploaded first and the new reference persisted before the old remote asset
// is removed, so the stored pointer always refers to an asset that exists.
// The ownership check runs before any upload.
func (s *videoService) ReplaceThumbnail(ctx context.Context, principal domain.Principal, videoID uuid.UUID, thumbnail *domain.StagedFile) (*domain.Video, error) {
	defer s.discard(thumbnail)

	if thumbnail == nil {
		return nil, fmt.Errorf("%w: thumbnail file required", domain.ErrValidation)
	}
	if !strings.HasPrefix(thumbnail.ContentType, "image/") {
		return nil, fmt.Errorf("%w: invalid thumbnail file type %q", domain.ErrValidation, thumbnail.ContentType)
	}

	video, err := s.uow.VideoRepo().FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := AssertOwner(video, principal); err != nil {
		return nil, err
	}

	uploaded, uploadErr := s.media.Upload(ctx, thumbnail.Path, domain.MediaKindImage)
	if uploadErr != nil {
		return nil, fmt.Errorf("%w: uploading thumbnail: %w", domain.ErrUploadFailed, uploadErr)
	}
	if uploaded == nil || uploaded.Ref == "" {
		return nil, fmt.Errorf("%w: media store returned no reference", domain.ErrUploadFailed)
	}

	oldRef := video.ThumbnailRef
	video.ThumbnailRef = &uploaded.Ref

	if updateErr := s.uow.VideoRepo().Update(ctx, video); updateErr != nil {
		// The record still points at the old asset; only the new upload
		// needs compensating.
		if err := s.media.Delete(ctx, uploaded.Ref, domain.MediaKindImage); err != nil {
			s.logger.Error("compensating delete of uploaded thumbnail failed", "ref", uploaded.Ref, "error", err)
		}
		return nil, fmt.Errorf("%w: updating video %s: %w", domain.ErrPersistenceFailed, videoID, updateErr)
	}

	if oldRef != nil && *oldRef != "" {
		if err := s.media.Delete(ctx, *oldRef, domain.MediaKindImage); err != nil {
			s.logger.Error("remote delete of replaced thumbnail failed", "ref", *oldRef, "error", err)
		}
	}

	return video, nil
}
