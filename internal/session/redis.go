package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tariq235/csrf-protection-example/internal/models"
)

// RedisStore keeps session entries in Redis so that every server instance
// sees the same tokens. A zero ttl keeps the baseline behavior of entries
// that never expire.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "csrf:",
		ttl:    ttl,
	}
}

func (s *RedisStore) key(userID string) string {
	return s.prefix + userID
}

// Put inserts or replaces the entry for userID
func (s *RedisStore) Put(ctx context.Context, userID, token string) error {
	if userID == "" {
		return fmt.Errorf("session: missing user id")
	}

	data, err := json.Marshal(models.SessionEntry{UserID: userID, Token: token})
	if err != nil {
		return fmt.Errorf("session: failed to marshal entry: %w", err)
	}

	// SET is a single atomic replace; ttl 0 means no expiry
	if err := s.client.Set(ctx, s.key(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: failed to store entry: %w", err)
	}
	return nil
}

// Get returns the current entry for userID, or nil when absent
func (s *RedisStore) Get(ctx context.Context, userID string) (*models.SessionEntry, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: failed to read entry: %w", err)
	}

	var entry models.SessionEntry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal entry: %w", err)
	}

	return &entry, nil
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("session: failed to connect to redis: %w", err)
	}

	return client, nil
}
