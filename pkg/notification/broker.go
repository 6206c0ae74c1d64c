// Package notification fans new comments out to subscribers of a single recipe.
package notification

import (
	"Recipe-Hub/domain"
	"context"
)

const subscriberBuffer = 16

// Broker delivery is best-effort: events published before Subscribe returns are not replayed,
// and a subscriber that falls behind by more than its buffer misses events.
type Broker interface {
	Publish(ctx context.Context, event domain.CommentEvent) error
	// Subscribe returns a channel that is closed once ctx is done.
	Subscribe(ctx context.Context, recipeID string) (<-chan domain.CommentEvent, error)
	Close() error
}

func Channel(recipeID string) string {
	return "comments:" + recipeID
}
