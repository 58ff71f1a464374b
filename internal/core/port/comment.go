package port

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/google/uuid"
)

// CommentRepository is an interface to define comment repository interactions
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByVideo(ctx context.Context, videoID uuid.UUID, limit, offset int) ([]domain.CommentWithAuthor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByVideoID(ctx context.Context, videoID uuid.UUID) error
}

// CommentService is an interface to define comment operations
type CommentService interface {
	Create(ctx context.Context, principal domain.Principal, videoID uuid.UUID, body string) (*domain.Comment, error)
	ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]domain.CommentWithAuthor, error)
	Delete(ctx context.Context, principal domain.Principal, commentID uuid.UUID) error
}
