package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

type sqlCommentRepository struct {
	db SQLQuerier
}

// NewSQLCommentRepository creates sqlCommentRepository that implements port.CommentRepository
func NewSQLCommentRepository(db SQLQuerier) port.CommentRepository {
	return &sqlCommentRepository{db: db}
}

// Create inserts a new comment row
func (s *sqlCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `INSERT INTO comments (id, video_id, author_id, body)
              VALUES ($1, $2, $3, $4)
              RETURNING created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		comment.ID, comment.VideoID, comment.AuthorID, comment.Body,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting comment: %w", err)
	}
	return nil
}

// FindByID finds a comment by id
func (s *sqlCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query := `SELECT id, video_id, author_id, body, created_at, updated_at
              FROM comments
              WHERE id = $1`

	var comment domain.Comment
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.VideoID, &comment.AuthorID, &comment.Body,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: comment %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("error finding comment: %w", err)
	}
	return &comment, nil
}

// ListByVideo lists a video's comments newest first, joined with their authors
func (s *sqlCommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, limit, offset int) ([]domain.CommentWithAuthor, error) {
	query := `SELECT c.id, c.video_id, c.author_id, c.body, c.created_at, c.updated_at, u.username
              FROM comments c
              JOIN users u ON u.id = c.author_id
              WHERE c.video_id = $1
              ORDER BY c.created_at DESC
              LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, videoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.CommentWithAuthor, 0, limit)
	for rows.Next() {
		var comment domain.CommentWithAuthor
		if err := rows.Scan(
			&comment.ID, &comment.VideoID, &comment.AuthorID, &comment.Body,
			&comment.CreatedAt, &comment.UpdatedAt, &comment.AuthorUsername,
		); err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return comments, nil
}

// Delete removes a comment row
func (s *sqlCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: comment %s", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteByVideoID removes every comment attached to a video. Zero rows is not
// an error; a video may simply have no comments.
func (s *sqlCommentRepository) DeleteByVideoID(ctx context.Context, videoID uuid.UUID) error {
	query := `DELETE FROM comments WHERE video_id = $1`

	if _, err := s.db.ExecContext(ctx, query, videoID); err != nil {
		return fmt.Errorf("error deleting comments of video %s: %w", videoID, err)
	}
	return nil
}
