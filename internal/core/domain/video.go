package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaKind is the category of a stored media asset
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Video represents a published or draft video owned by a user.
// OwnerID is set once at creation and never reassigned; Views only increases.
type Video struct {
	ID              uuid.UUID
	Title           string
	Description     *string
	MediaRef        string
	ThumbnailRef    *string
	OwnerID         uuid.UUID
	DurationSeconds float64
	Views           int64
	Published       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VideoWithOwner is a video joined with its owner's public profile
type VideoWithOwner struct {
	Video
	OwnerUsername string
	OwnerFullName string
}

// MediaObject is what the media store reports back after a successful upload
type MediaObject struct {
	Ref             string
	DurationSeconds float64
}
