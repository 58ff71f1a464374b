package cleanup

import (
	"context"
	"time"
)

// SweepStaging removes staged files older than the configured TTL. These are
// leftovers from requests that crashed between staging a file and releasing
// it; the upload path already discards staged files on every exit branch.
func (c *cleanupService) SweepStaging(ctx context.Context, now time.Time) error {
	removed, err := c.staging.Sweep(now.Add(-c.ttl))
	if err != nil {
		c.logger.Error("staging sweep failed", "error", err)
		return err
	}
	if removed > 0 {
		c.logger.Info("removed abandoned staged files", "count", removed)
	}
	return nil
}
