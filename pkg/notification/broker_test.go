package notification

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/utils/logger"
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan domain.CommentEvent) (domain.CommentEvent, bool) {
	t.Helper()
	select {
	case ev, ok := <-ch:
		return ev, ok
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return domain.CommentEvent{}, false
	}
}

func assertNoEvent(t *testing.T, ch <-chan domain.CommentEvent) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func exerciseBroker(t *testing.T, b Broker) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chA, err := b.Subscribe(ctx, "recipe-a")
	require.NoError(t, err)
	chB, err := b.Subscribe(ctx, "recipe-b")
	require.NoError(t, err)

	require.NoError(t, b.Publish(ctx, domain.CommentEvent{
		RecipeID: "recipe-a",
		Comment:  domain.Comment{ID: "c1", RecipeID: "recipe-a", Content: "tasty"},
	}))

	ev, ok := recv(t, chA)
	require.True(t, ok)
	assert.Equal(t, "c1", ev.Comment.ID)
	assertNoEvent(t, chB)

	cancel()
	_, ok = recv(t, chA)
	assert.False(t, ok, "channel closes when the subscriber goes away")
}

func TestMemoryBrokerRoutesPerRecipe(t *testing.T) {
	exerciseBroker(t, NewMemoryBroker())
}

func TestMemoryBrokerDropsWhenFull(t *testing.T) {
	b := NewMemoryBroker()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := b.Subscribe(ctx, "r")
	require.NoError(t, err)

	for i := 0; i < subscriberBuffer+5; i++ {
		require.NoError(t, b.Publish(ctx, domain.CommentEvent{RecipeID: "r"}))
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestMemoryBrokerClose(t *testing.T) {
	b := NewMemoryBroker()
	ch, err := b.Subscribe(context.Background(), "r")
	require.NoError(t, err)
	require.NoError(t, b.Close())
	_, ok := <-ch
	assert.False(t, ok)

	late, err := b.Subscribe(context.Background(), "r")
	require.NoError(t, err)
	_, ok = <-late
	assert.False(t, ok)
}

func TestRedisBroker(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	exerciseBroker(t, NewRedisBroker(rdb, logger.NewNop()))
}
