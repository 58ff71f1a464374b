package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment on a video. Its lifecycle is subordinate to
// the video's: deleting the video removes its comments in the same transaction.
type Comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	AuthorID  uuid.UUID
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentWithAuthor is a comment joined with its author's public profile
type CommentWithAuthor struct {
	Comment
	AuthorUsername string
}

// Like represents a user liking a video. The (VideoID, UserID) pair is unique.
type Like struct {
	VideoID   uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}
