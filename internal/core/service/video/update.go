package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

// UpdateMetadata applies partial metadata changes to an owned video.
// Omitted fields keep their current values; provided text fields are
// sanitized the same way as at publish time.
func (s *videoService) UpdateMetadata(ctx context.Context, principal domain.Principal, videoID uuid.UUID, in port.UpdateVideoInput) (*domain.Video, error) {
	video, err := s.uow.VideoRepo().FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := AssertOwner(video, principal); err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
		}
		video.Title = s.sanitizer.StripAll(title)
	}

	if in.Description != nil {
		if trimmed := strings.TrimSpace(*in.Description); trimmed != "" {
			sanitized := s.sanitizer.StripToAllowed(trimmed)
			video.Description = &sanitized
		} else {
			video.Description = nil
		}
	}

	if in.Published != nil {
		video.Published = *in.Published
	}

	if updateErr := s.uow.VideoRepo().Update(ctx, video); updateErr != nil {
		return nil, fmt.Errorf("%w: updating video %s: %w", domain.ErrPersistenceFailed, videoID, updateErr)
	}

	return video, nil
}
