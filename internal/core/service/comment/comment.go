package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxBodyLength   = 2000
)

type commentService struct {
	uow       port.UnitOfWork
	sanitizer port.Sanitizer
	logger    *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(uow port.UnitOfWork, sanitizer port.Sanitizer, logger *slog.Logger) port.CommentService {
	return &commentService{
		uow:       uow,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// Create attaches a comment to an existing video. The body is stripped of
// all markup before persisting.
func (s *commentService) Create(ctx context.Context, principal domain.Principal, videoID uuid.UUID, body string) (*domain.Comment, error) {
	body = s.sanitizer.StripAll(strings.TrimSpace(body))
	if body == "" {
		return nil, fmt.Errorf("%w: comment body required", domain.ErrValidation)
	}
	if len(body) > maxBodyLength {
		return nil, fmt.Errorf("%w: comment body exceeds %d characters", domain.ErrValidation, maxBodyLength)
	}

	if _, err := s.uow.VideoRepo().FindByID(ctx, videoID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:       uuid.New(),
		VideoID:  videoID,
		AuthorID: principal.UserID,
		Body:     body,
	}
	if err := s.uow.CommentRepo().Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w: saving comment: %w", domain.ErrPersistenceFailed, err)
	}
	return comment, nil
}

// ListByVideo returns a page of comments joined with their authors
func (s *commentService) ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]domain.CommentWithAuthor, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	comments, err := s.uow.CommentRepo().ListByVideo(ctx, videoID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("%w: listing comments: %w", domain.ErrPersistenceFailed, err)
	}
	return comments, nil
}

// Delete removes a comment authored by the principal. Author ids are
// compared in canonical string form, like video ownership.
func (s *commentService) Delete(ctx context.Context, principal domain.Principal, commentID uuid.UUID) error {
	comment, err := s.uow.CommentRepo().FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID.String() != principal.UserID.String() {
		return fmt.Errorf("%w: principal is not the author of comment %s", domain.ErrForbidden, commentID)
	}
	return s.uow.CommentRepo().Delete(ctx, commentID)
}
