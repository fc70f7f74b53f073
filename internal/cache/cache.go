// Package cache mirrors the schedule document into Redis and fans out
// update notifications across instances. The Postgres row stays the
// system of record; mirror failures are logged by callers and never
// fail a write.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// UpdateChannel carries the updatedAt token of every successful write.
const UpdateChannel = "schedule:updates"

// DocumentCacheInterface is the mirror surface the service layer uses.
type DocumentCacheInterface interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, doc json.RawMessage) error
	PublishUpdate(ctx context.Context, updatedAt string) error
}

// DocumentCache is a Redis-backed write-through mirror of the document blob
type DocumentCache struct {
	client *redis.Client
	prefix string
}

// Ensure DocumentCache implements DocumentCacheInterface
var _ DocumentCacheInterface = (*DocumentCache)(nil)

// New connects to Redis and verifies the connection
func New(redisURL string) (*DocumentCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(client), nil
}

// NewWithClient creates a cache from an existing Redis client
func NewWithClient(client *redis.Client) *DocumentCache {
	return &DocumentCache{
		client: client,
		prefix: "schedule:doc:",
	}
}

func (c *DocumentCache) key(docKey string) string {
	return c.prefix + docKey
}

// Get returns the mirrored blob, or (nil, nil) on a miss.
func (c *DocumentCache) Get(ctx context.Context, key string) (json.RawMessage, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get mirrored document: %w", err)
	}
	return data, nil
}

// Set replaces the mirrored blob. No TTL: the mirror is refreshed on
// every write and invalidated by overwriting.
func (c *DocumentCache) Set(ctx context.Context, key string, doc json.RawMessage) error {
	if err := c.client.Set(ctx, c.key(key), []byte(doc), 0).Err(); err != nil {
		return fmt.Errorf("mirror document: %w", err)
	}
	return nil
}

// PublishUpdate announces a successful write to all instances.
func (c *DocumentCache) PublishUpdate(ctx context.Context, updatedAt string) error {
	if err := c.client.Publish(ctx, UpdateChannel, updatedAt).Err(); err != nil {
		return fmt.Errorf("publish update: %w", err)
	}
	return nil
}

// SubscribeUpdates delivers each published updatedAt token to handler
// until ctx is cancelled. Intended to feed a notify.Broadcaster so SSE
// clients on other instances see writes too.
func (c *DocumentCache) SubscribeUpdates(ctx context.Context, handler func(updatedAt string)) {
	sub := c.client.Subscribe(ctx, UpdateChannel)
	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				handler(msg.Payload)
			}
		}
	}()
}
