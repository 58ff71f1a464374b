package port

import (
	"io"
	"time"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// StagingArea is an interface to define the local temp-file staging directory.
// Staged files carry globally-unique names, so no cross-request coordination
// is needed beyond the unique naming.
type StagingArea interface {
	Stage(r io.Reader, originalName, contentType string) (*domain.StagedFile, error)
	Discard(f *domain.StagedFile) error
	Sweep(olderThan time.Time) (int, error)
}
