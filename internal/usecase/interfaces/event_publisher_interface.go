package interfaces

import (
	"context"
	"errors"
)

// ErrEventVersionConflict is returned when an event for the same
// aggregate and version was already published. Retries of an already
// accepted publish fail closed instead of duplicating.
var ErrEventVersionConflict = errors.New("event version conflict")

// IEventPublisher publishes domain events with version-gated
// ordering: per aggregate the accepted stream is gap-free, strictly
// increasing and at-most-once per version.

type IEventPublisher interface {
	Publish(ctx context.Context, subject string, aggregateID string, expectedVersion int64, payload any) error
}
