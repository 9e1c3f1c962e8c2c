package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "relief-coordination.com/relief-coordination/internal/errors"
)

// Limiter decides whether one more request for key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

func RateLimiter(limiter Limiter, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				logger.Warn("rate limiter unavailable, letting request through",
					zap.String("ip", key),
					zap.Error(err),
				)
				return next(c)
			}
			if !allowed {
				return apperrors.ErrRateLimited
			}

			return next(c)
		}
	}
}

type bucket struct {
	count int
	start time.Time
}

// MemoryLimiter is a per-process fixed window counter. Buckets whose window
// has elapsed are swept at most once per window.
type MemoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     int
	window    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.window {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) > l.window {
		b = &bucket{start: now}
		l.buckets[key] = b
	}

	if b.count >= l.limit {
		return false, nil
	}

	b.count++
	return true, nil
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.start) > l.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
