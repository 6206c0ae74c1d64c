package notification

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/utils/metrics"
	"context"
	"sync"
)

type (
	subscriber struct {
		ch chan domain.CommentEvent
	}

	memoryBroker struct {
		mu     sync.RWMutex
		topics map[string]map[*subscriber]struct{}
		closed bool
	}
)

// NewMemoryBroker keeps subscriptions in process. Single node only.
func NewMemoryBroker() Broker {
	return &memoryBroker{topics: map[string]map[*subscriber]struct{}{}}
}

func (b *memoryBroker) Publish(_ context.Context, event domain.CommentEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.topics[event.RecipeID] {
		select {
		case sub.ch <- event:
		default:
		}
	}
	metrics.RecordCommentPublished()
	return nil
}

func (b *memoryBroker) Subscribe(ctx context.Context, recipeID string) (<-chan domain.CommentEvent, error) {
	sub := &subscriber{ch: make(chan domain.CommentEvent, subscriberBuffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch, nil
	}
	if b.topics[recipeID] == nil {
		b.topics[recipeID] = map[*subscriber]struct{}{}
	}
	b.topics[recipeID][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(recipeID, sub)
	}()
	return sub.ch, nil
}

func (b *memoryBroker) remove(recipeID string, sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs, ok := b.topics[recipeID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.topics, recipeID)
	}
	close(sub.ch)
}

func (b *memoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for recipeID, subs := range b.topics {
		for sub := range subs {
			close(sub.ch)
		}
		delete(b.topics, recipeID)
	}
	return nil
}
