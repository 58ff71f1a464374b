package video

import (
	"context"
	"log/slog"
	"time"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
)

type videoService struct {
	uow       port.UnitOfWork
	media     port.MediaStore
	staging   port.StagingArea
	sanitizer port.Sanitizer
	events    port.EventPublisher
	logger    *slog.Logger
}

// NewVideoService creates a new video service
func NewVideoService(
	uow port.UnitOfWork,
	media port.MediaStore,
	staging port.StagingArea,
	sanitizer port.Sanitizer,
	events port.EventPublisher,
	logger *slog.Logger,
) port.VideoService {
	return &videoService{
		uow:       uow,
		media:     media,
		staging:   staging,
		sanitizer: sanitizer,
		events:    events,
		logger:    logger,
	}
}

// discard releases a locally staged file. Failures are logged only; a leaked
// temp file is picked up later by the staging sweep.
func (s *videoService) discard(f *domain.StagedFile) {
	if f == nil {
		return
	}
	if err := s.staging.Discard(f); err != nil {
		s.logger.Error("failed to discard staged file", "path", f.Path, "error", err)
	}
}

func (s *videoService) emit(ctx context.Context, eventType domain.EventType, video *domain.Video) {
	event := domain.VideoEvent{
		Type:       eventType,
		VideoID:    video.ID,
		OwnerID:    video.OwnerID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish video event", "type", eventType, "video_id", video.ID, "error", err)
	}
}
