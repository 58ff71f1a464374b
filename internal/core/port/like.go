package port

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
)

// LikeRepository is an interface to define like repository interactions
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, videoID, userID uuid.UUID) error
	Count(ctx context.Context, videoID uuid.UUID) (int64, error)
	DeleteByVideoID(ctx context.Context, videoID uuid.UUID) error
}

// LikeService is an interface to define like operations
type LikeService interface {
	Like(ctx context.Context, principal domain.Principal, videoID uuid.UUID) error
	Unlike(ctx context.Context, principal domain.Principal, videoID uuid.UUID) error
	Count(ctx context.Context, videoID uuid.UUID) (int64, error)
}
