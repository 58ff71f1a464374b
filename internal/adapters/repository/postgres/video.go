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

type sqlVideoRepository struct {
	db SQLQuerier
}

// NewSQLVideoRepository creates sqlVideoRepository that implements port.VideoRepository
func NewSQLVideoRepository(db SQLQuerier) port.VideoRepository {
	return &sqlVideoRepository{db: db}
}

// Create inserts a new video row
func (s *sqlVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	query := `INSERT INTO videos (id, title, description, media_ref, thumbnail_ref, owner_id, duration_seconds, published)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING views, created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		video.ID, video.Title, video.Description, video.MediaRef,
		video.ThumbnailRef, video.OwnerID, video.DurationSeconds, video.Published,
	).Scan(&video.Views, &video.CreatedAt, &video.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: video %s already exists", domain.ErrConflict, video.ID)
		}
		return fmt.Errorf("error inserting video: %w", err)
	}
	return nil
}

// FindByID finds a video by id
func (s *sqlVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	query := `SELECT id, title, description, media_ref, thumbnail_ref, owner_id, duration_seconds, views, published, created_at, updated_at
              FROM videos
              WHERE id = $1`

	var video domain.Video
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&video.ID, &video.Title, &video.Description, &video.MediaRef, &video.ThumbnailRef,
		&video.OwnerID, &video.DurationSeconds, &video.Views, &video.Published,
		&video.CreatedAt, &video.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("error finding video: %w", err)
	}
	return &video, nil
}

// FindByIDWithOwner finds a video joined with its owner's public profile
func (s *sqlVideoRepository) FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*domain.VideoWithOwner, error) {
	query := `SELECT v.id, v.title, v.description, v.media_ref, v.thumbnail_ref, v.owner_id, v.duration_seconds, v.views, v.published, v.created_at, v.updated_at,
                     u.username, u.full_name
              FROM videos v
              JOIN users u ON u.id = v.owner_id
              WHERE v.id = $1`

	var video domain.VideoWithOwner
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&video.ID, &video.Title, &video.Description, &video.MediaRef, &video.ThumbnailRef,
		&video.OwnerID, &video.DurationSeconds, &video.Views, &video.Published,
		&video.CreatedAt, &video.UpdatedAt,
		&video.OwnerUsername, &video.OwnerFullName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("error finding video with owner: %w", err)
	}
	return &video, nil
}

// ListPublished lists published videos newest first, optionally filtered by a
// title/description search and re-ordered by views or duration
func (s *sqlVideoRepository) ListPublished(ctx context.Context, searchQuery, sort string, limit, offset int) ([]domain.VideoWithOwner, int64, error) {
	orderBy := "v.created_at DESC"
	switch sort {
	case "views":
		orderBy = "v.views DESC"
	case "duration":
		orderBy = "v.duration_seconds DESC"
	case "oldest":
		orderBy = "v.created_at ASC"
	}

	where := "v.published"
	args := []any{}
	if searchQuery != "" {
		where += " AND (v.title ILIKE $1 OR v.description ILIKE $1)"
		args = append(args, "%"+searchQuery+"%")
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM videos v WHERE %s`, where)
	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting videos: %w", err)
	}

	query := fmt.Sprintf(`SELECT v.id, v.title, v.description, v.media_ref, v.thumbnail_ref, v.owner_id, v.duration_seconds, v.views, v.published, v.created_at, v.updated_at,
                                 u.username, u.full_name
                          FROM videos v
                          JOIN users u ON u.id = v.owner_id
                          WHERE %s
                          ORDER BY %s
                          LIMIT $%d OFFSET $%d`, where, orderBy, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing videos: %w", err)
	}
	defer rows.Close()

	videos := make([]domain.VideoWithOwner, 0, limit)
	for rows.Next() {
		var video domain.VideoWithOwner
		if err := rows.Scan(
			&video.ID, &video.Title, &video.Description, &video.MediaRef, &video.ThumbnailRef,
			&video.OwnerID, &video.DurationSeconds, &video.Views, &video.Published,
			&video.CreatedAt, &video.UpdatedAt,
			&video.OwnerUsername, &video.OwnerFullName,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning video row: %w", err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating video rows: %w", err)
	}
	return videos, total, nil
}

// ListByOwner lists one channel's videos newest first. Drafts are included
// only when the caller asks for them.
func (s *sqlVideoRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, includeUnpublished bool, limit, offset int) ([]domain.Video, int64, error) {
	where := "owner_id = $1"
	if !includeUnpublished {
		where += " AND published"
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM videos WHERE %s`, where)
	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting channel videos: %w", err)
	}

	query := fmt.Sprintf(`SELECT id, title, description, media_ref, thumbnail_ref, owner_id, duration_seconds, views, published, created_at, updated_at
                          FROM videos
                          WHERE %s
                          ORDER BY created_at DESC
                          LIMIT $2 OFFSET $3`, where)

	rows, err := s.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing channel videos: %w", err)
	}
	defer rows.Close()

	videos := make([]domain.Video, 0, limit)
	for rows.Next() {
		var video domain.Video
		if err := rows.Scan(
			&video.ID, &video.Title, &video.Description, &video.MediaRef, &video.ThumbnailRef,
			&video.OwnerID, &video.DurationSeconds, &video.Views, &video.Published,
			&video.CreatedAt, &video.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning video row: %w", err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating video rows: %w", err)
	}
	return videos, total, nil
}

// Update persists mutable metadata; the owner column is never touched
func (s *sqlVideoRepository) Update(ctx context.Context, video *domain.Video) error {
	query := `UPDATE videos
              SET title = $1, description = $2, thumbnail_ref = $3, published = $4, updated_at = now()
              WHERE id = $5`

	result, err := s.db.ExecContext(ctx, query,
		video.Title, video.Description, video.ThumbnailRef, video.Published, video.ID)
	if err != nil {
		return fmt.Errorf("error updating video: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: video %s", domain.ErrNotFound, video.ID)
	}
	return nil
}

// Delete hard deletes a video row
func (s *sqlVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM videos WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting video: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
	}
	return nil
}

// IncrementViews bumps the monotonic view counter
func (s *sqlVideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE videos SET views = views + 1 WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error incrementing views: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
	}
	return nil
}
