package postgres

import (
	"context"
	"fmt"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

type sqlLikeRepository struct {
	db SQLQuerier
}

// NewSQLLikeRepository creates sqlLikeRepository that implements port.LikeRepository
func NewSQLLikeRepository(db SQLQuerier) port.LikeRepository {
	return &sqlLikeRepository{db: db}
}

// Create inserts a like; the (video_id, user_id) pair is unique
func (s *sqlLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	query := `INSERT INTO likes (video_id, user_id) VALUES ($1, $2)`

	if _, err := s.db.ExecContext(ctx, query, like.VideoID, like.UserID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: video %s already liked", domain.ErrConflict, like.VideoID)
		}
		return fmt.Errorf("error inserting like: %w", err)
	}
	return nil
}

// Delete removes a single user's like on a video
func (s *sqlLikeRepository) Delete(ctx context.Context, videoID, userID uuid.UUID) error {
	query := `DELETE FROM likes WHERE video_id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, videoID, userID)
	if err != nil {
		return fmt.Errorf("error deleting like: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: like on video %s", domain.ErrNotFound, videoID)
	}
	return nil
}

// Count counts likes on a video
func (s *sqlLikeRepository) Count(ctx context.Context, videoID uuid.UUID) (int64, error) {
	query := `SELECT count(*) FROM likes WHERE video_id = $1`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, videoID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting likes: %w", err)
	}
	return count, nil
}

// DeleteByVideoID removes every like attached to a video
func (s *sqlLikeRepository) DeleteByVideoID(ctx context.Context, videoID uuid.UUID) error {
	query := `DELETE FROM likes WHERE video_id = $1`

	if _, err := s.db.ExecContext(ctx, query, videoID); err != nil {
		return fmt.Errorf("error deleting likes of video %s: %w", videoID, err)
	}
	return nil
}
