package otp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var errNoCode = errors.New("no pending code")

type (
	Entry struct {
		Hash     string
		Attempts int
	}

	// Store keeps one pending code per phone with an expiry.
	Store interface {
		Save(ctx context.Context, phone, hash string, ttl time.Duration) error
		Get(ctx context.Context, phone string) (Entry, error)
		IncrementAttempts(ctx context.Context, phone string, ttl time.Duration) (int, error)
		Delete(ctx context.Context, phone string) error
	}

	redisStore struct {
		rdb *redis.Client
	}

	memoryEntry struct {
		Entry
		expiresAt time.Time
	}

	memoryStore struct {
		mu      sync.Mutex
		entries map[string]*memoryEntry
		now     func() time.Time
	}
)

func codeKey(phone string) string     { return "otp:" + phone }
func attemptsKey(phone string) string { return "otp:" + phone + ":attempts" }

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Save(ctx context.Context, phone, hash string, ttl time.Duration) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, codeKey(phone), hash, ttl)
		pipe.Del(ctx, attemptsKey(phone))
		return nil
	})
	if err != nil {
		return fmt.Errorf("save otp: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, phone string) (Entry, error) {
	var hashCmd *redis.StringCmd
	var attemptsCmd *redis.StringCmd
	_, err := s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		hashCmd = pipe.Get(ctx, codeKey(phone))
		attemptsCmd = pipe.Get(ctx, attemptsKey(phone))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return Entry{}, fmt.Errorf("get otp: %w", err)
	}

	hash, err := hashCmd.Result()
	if errors.Is(err, redis.Nil) {
		return Entry{}, errNoCode
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get otp: %w", err)
	}

	entry := Entry{Hash: hash}
	if raw, err := attemptsCmd.Result(); err == nil {
		entry.Attempts, _ = strconv.Atoi(raw)
	}
	return entry, nil
}

func (s *redisStore) IncrementAttempts(ctx context.Context, phone string, ttl time.Duration) (int, error) {
	var incr *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, attemptsKey(phone))
		pipe.Expire(ctx, attemptsKey(phone), ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("increment otp attempts: %w", err)
	}
	return int(incr.Val()), nil
}

func (s *redisStore) Delete(ctx context.Context, phone string) error {
	return s.rdb.Del(ctx, codeKey(phone), attemptsKey(phone)).Err()
}

// NewMemoryStore is a single-process Store for development and tests.
func NewMemoryStore() Store {
	return &memoryStore{entries: map[string]*memoryEntry{}, now: time.Now}
}

func (s *memoryStore) Save(_ context.Context, phone, hash string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phone] = &memoryEntry{Entry: Entry{Hash: hash}, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *memoryStore) live(phone string) (*memoryEntry, bool) {
	e, ok := s.entries[phone]
	if !ok {
		return nil, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, phone)
		return nil, false
	}
	return e, true
}

func (s *memoryStore) Get(_ context.Context, phone string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(phone)
	if !ok {
		return Entry{}, errNoCode
	}
	return e.Entry, nil
}

func (s *memoryStore) IncrementAttempts(_ context.Context, phone string, _ time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(phone)
	if !ok {
		return 0, errNoCode
	}
	e.Attempts++
	return e.Attempts, nil
}

func (s *memoryStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, phone)
	return nil
}
