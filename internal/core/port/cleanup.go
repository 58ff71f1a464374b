package port

import (
	"context"
	"time"
)

// CleanupService is service that handles cleanup of abandoned staged files
type CleanupService interface {
	SweepStaging(ctx context.Context, now time.Time) error
}
