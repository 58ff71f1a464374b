package port

import (
	"context"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
)

// EventPublisher is an interface to define a video lifecycle event publisher (nats, kafka, ...)
type EventPublisher interface {
	Publish(ctx context.Context, event domain.VideoEvent) error
	Close() error
}
