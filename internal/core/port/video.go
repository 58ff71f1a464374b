package port

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
)

// VideoRepository is an interface to define video repository interactions
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*domain.VideoWithOwner, error)
	ListPublished(ctx context.Context, query, sort string, limit, offset int) ([]domain.VideoWithOwner, int64, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, includeUnpublished bool, limit, offset int) ([]domain.Video, int64, error)
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

// PublishVideoInput carries the validated multipart fields of a publish request
type PublishVideoInput struct {
	Title       string
	Description string
	Published   bool
	Video       *domain.StagedFile
	Thumbnail   *domain.StagedFile
}

// UpdateVideoInput carries optional metadata updates; nil fields keep current values
type UpdateVideoInput struct {
	Title       *string
	Description *string
	Published   *bool
}

// ListVideosInput carries pagination and search parameters
type ListVideosInput struct {
	Page  int
	Limit int
	Query string
	Sort  string
}

// VideoService is an interface to define the video lifecycle service
type VideoService interface {
	Publish(ctx context.Context, principal domain.Principal, in PublishVideoInput) (*domain.Video, error)
	Delete(ctx context.Context, principal domain.Principal, videoID uuid.UUID) error
	UpdateMetadata(ctx context.Context, principal domain.Principal, videoID uuid.UUID, in UpdateVideoInput) (*domain.Video, error)
	ReplaceThumbnail(ctx context.Context, principal domain.Principal, videoID uuid.UUID, thumbnail *domain.StagedFile) (*domain.Video, error)
	Get(ctx context.Context, viewer *domain.Principal, videoID uuid.UUID) (*domain.VideoWithOwner, error)
	List(ctx context.Context, in ListVideosInput) ([]domain.VideoWithOwner, int64, error)
	ListByOwner(ctx context.Context, viewer *domain.Principal, ownerID uuid.UUID, in ListVideosInput) ([]domain.Video, int64, error)
	RecordView(ctx context.Context, videoID uuid.UUID) error
}
