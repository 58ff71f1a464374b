package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType is a type that represents the type of a video lifecycle event
type EventType string

const (
	EventTypeVideoPublished EventType = "video.published"
	EventTypeVideoDeleted   EventType = "video.deleted"
)

// VideoEvent is emitted after a video is published or deleted
type VideoEvent struct {
	Type       EventType `json:"type"`
	VideoID    uuid.UUID `json:"video_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
