package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

// Publish validates and sanitizes the incoming metadata, pushes the staged
// files to the media store and persists the video record. On any failure
// after a successful remote upload the already uploaded assets are deleted
// again (compensation). Staged files are released on every exit path.
func (s *videoService) Publish(ctx context.Context, principal domain.Principal, in port.PublishVideoInput) (*domain.Video, error) {
	defer s.discard(in.Video)
	defer s.discard(in.Thumbnail)

	title := strings.TrimSpace(in.Title)
	if title == "" || in.Video == nil {
		return nil, fmt.Errorf("%w: title and video file required", domain.ErrValidation)
	}
	if !strings.HasPrefix(in.Video.ContentType, "video/") {
		return nil, fmt.Errorf("%w: invalid video file type %q", domain.ErrValidation, in.Video.ContentType)
	}

	title = s.sanitizer.StripAll(title)
	var description *string
	if trimmed := strings.TrimSpace(in.Description); trimmed != "" {
		sanitized := s.sanitizer.StripToAllowed(trimmed)
		description = &sanitized
	}

	media, err := s.media.Upload(ctx, in.Video.Path, domain.MediaKindVideo)
	if err != nil {
		return nil, fmt.Errorf("%w: uploading video: %w", domain.ErrUploadFailed, err)
	}
	if media == nil || media.Ref == "" {
		return nil, fmt.Errorf("%w: media store returned no reference", domain.ErrUploadFailed)
	}

	// A failed thumbnail upload is non-fatal: publish without one.
	var thumbnailRef *string
	if in.Thumbnail != nil {
		thumbnail, thumbErr := s.media.Upload(ctx, in.Thumbnail.Path, domain.MediaKindImage)
		switch {
		case thumbErr != nil:
			s.logger.Warn("thumbnail upload failed, publishing without thumbnail", "error", thumbErr)
		case thumbnail != nil && thumbnail.Ref != "":
			thumbnailRef = &thumbnail.Ref
		}
	}

	video := &domain.Video{
		ID:              uuid.New(),
		Title:           title,
		Description:     description,
		MediaRef:        media.Ref,
		ThumbnailRef:    thumbnailRef,
		OwnerID:         principal.UserID,
		DurationSeconds: media.DurationSeconds,
		Published:       in.Published,
	}

	if createErr := s.uow.VideoRepo().Create(ctx, video); createErr != nil {
		s.compensate(ctx, media.Ref, thumbnailRef)
		return nil, fmt.Errorf("%w: saving video: %w", domain.ErrPersistenceFailed, createErr)
	}

	s.emit(ctx, domain.EventTypeVideoPublished, video)

	return video, nil
}

// compensate deletes remote assets uploaded during a publish that could not
// complete. Each deletion is attempted independently and failures are logged
// only; they never surface to the caller.
func (s *videoService) compensate(ctx context.Context, videoRef string, thumbnailRef *string) {
	if videoRef != "" {
		if err := s.media.Delete(ctx, videoRef, domain.MediaKindVideo); err != nil {
			s.logger.Error("compensating delete of uploaded video failed", "ref", videoRef, "error", err)
		}
	}
	if thumbnailRef != nil && *thumbnailRef != "" {
		if err := s.media.Delete(ctx, *thumbnailRef, domain.MediaKindImage); err != nil {
			s.logger.Error("compensating delete of uploaded thumbnail failed", "ref", *thumbnailRef, "error", err)
		}
	}
}
