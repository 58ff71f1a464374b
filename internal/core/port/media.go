package port

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// MediaStore is an interface to define remote media storage interactions.
// Upload pushes a locally staged file and reports the stored reference plus,
// for videos, the probed duration. Delete removes a previously stored asset.
type MediaStore interface {
	Upload(ctx context.Context, localPath string, kind domain.MediaKind) (*domain.MediaObject, error)
	Delete(ctx context.Context, ref string, kind domain.MediaKind) error
}
