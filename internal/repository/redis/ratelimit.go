package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptPrefix = "ratelimit:"
	attemptWindow = time.Minute
)

// RateLimiter counts attempts per key in fixed one-minute windows. The
// window start is part of the redis key, so counters of past windows
// simply expire.
type RateLimiter struct {
	client *Client
	limit  int64
	now    func() time.Time
}

// NewRateLimiter allows requestsPerMinute+burst attempts per key and window
func NewRateLimiter(client *Client, requestsPerMinute, burst int) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  int64(requestsPerMinute + burst),
		now:    time.Now,
	}
}

func (r *RateLimiter) window() (key string, start time.Time) {
	start = r.now().Truncate(attemptWindow)
	return strconv.FormatInt(start.Unix(), 10), start
}

func attemptKey(key, window string) string {
	return attemptPrefix + key + ":" + window
}

// Allow records one attempt for key and reports whether it fits the window,
// how many attempts remain and when the window closes.
func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, int, time.Time, error) {
	window, start := r.window()
	counterKey := attemptKey(key, window)

	pipe := r.client.rdb.Pipeline()
	count := pipe.Incr(ctx, counterKey)
	pipe.Expire(ctx, counterKey, attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, 0, time.Time{}, fmt.Errorf("failed to count attempt: %w", err)
	}

	remaining := r.limit - count.Val()
	if remaining < 0 {
		remaining = 0
	}
	return count.Val() <= r.limit, int(remaining), start.Add(attemptWindow), nil
}

// Reset forgets the attempts of key in the current window
func (r *RateLimiter) Reset(ctx context.Context, key string) error {
	window, _ := r.window()
	if err := r.client.rdb.Del(ctx, attemptKey(key, window)).Err(); err != nil {
		return fmt.Errorf("failed to reset attempts: %w", err)
	}
	return nil
}
