package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client provides blocking-pop consumption and push production on one
// Redis-backed job list.
type Client struct {
	rdb *redis.Client
	key string
}

// NewClient connects to Redis using a redis:// URL.
func NewClient(redisURL, key string) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Client{rdb: redis.NewClient(opts), key: key}, nil
}

// Ping verifies connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Push enqueues a message at the head of the list.
func (c *Client) Push(ctx context.Context, msg Message) error {
	payload, err := msg.Encode()
	if err != nil {
		return err
	}
	if err := c.rdb.LPush(ctx, c.key, payload).Err(); err != nil {
		return fmt.Errorf("enqueue job %s: %w", msg.JobID, err)
	}
	return nil
}

// Pop blocks for up to timeout waiting for one message and removes it from
// the list. A nil message with nil error means the wait timed out; this is
// the expected idle case, not an error.
func (c *Client) Pop(ctx context.Context, timeout time.Duration) (*Message, error) {
	res, err := c.rdb.BRPop(ctx, timeout, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dequeue: %w", err)
	}
	// BRPop returns [key, payload].
	if len(res) != 2 {
		return nil, fmt.Errorf("dequeue: unexpected reply length %d", len(res))
	}
	return DecodeMessage(res[1])
}

// Len reports the number of pending messages.
func (c *Client) Len(ctx context.Context) (int64, error) {
	n, err := c.rdb.LLen(ctx, c.key).Result()
	if err != nil {
		return 0, fmt.Errorf("queue length: %w", err)
	}
	return n, nil
}

// Close releases the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
