package cleanup

import (
	"log/slog"
	"time"

	"github.com/NomanKhan13/focusTube/internal/core/port"
)

type cleanupService struct {
	staging port.StagingArea
	ttl     time.Duration
	logger  *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(staging port.StagingArea, ttl time.Duration, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		staging: staging,
		ttl:     ttl,
		logger:  logger,
	}
}
