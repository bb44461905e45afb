package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles login attempts per email using a fixed window.
// Key format: login_attempts:<email>. The counter expires after the window,
// so a locked-out caller regains access without any cleanup job.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow records one attempt and reports whether the caller is still under
// the limit for the current window.
func (l *LoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login limit incr: %w", err)
	}
	if n == 1 {
		// First attempt in this window starts the expiry clock.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("login limit expire: %w", err)
		}
	}
	return n <= int64(l.maxAttempts), nil
}

// Reset clears the attempt counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(email))
}
