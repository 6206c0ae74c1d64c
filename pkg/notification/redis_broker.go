package notification

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/internal/utils/metrics"
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisBroker struct {
	log *logger.Logger
	rdb *redis.Client
}

// NewRedisBroker publishes each recipe's comments on its own channel so that
// every API node can serve subscribers.
func NewRedisBroker(rdb *redis.Client, log *logger.Logger) Broker {
	return &redisBroker{
		log: log.With("service", "RedisCommentBroker"),
		rdb: rdb,
	}
}

func (b *redisBroker) Publish(ctx context.Context, event domain.CommentEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := b.rdb.Publish(ctx, Channel(event.RecipeID), raw).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	metrics.RecordCommentPublished()
	return nil
}

func (b *redisBroker) Subscribe(ctx context.Context, recipeID string) (<-chan domain.CommentEvent, error) {
	sub := b.rdb.Subscribe(ctx, Channel(recipeID))

	// ensures subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan domain.CommentEvent, subscriberBuffer)
	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					return
				}
				var event domain.CommentEvent
				if err := json.Unmarshal([]byte(m.Payload), &event); err != nil {
					b.log.Warn("bad comment payload", "channel", m.Channel, "error", err)
					continue
				}
				select {
				case out <- event:
				default:
					b.log.Debug("subscriber lagging, dropping event", "recipe_id", recipeID)
				}
			}
		}
	}()
	return out, nil
}

func (b *redisBroker) Close() error {
	return nil
}
