package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// RedisLimiter shares fixed window counters between instances through Redis.
// Calls go through a circuit breaker so an unreachable Redis fails fast.
type RedisLimiter struct {
	client  rueidis.Client
	prefix  string
	limit   int64
	window  time.Duration
	breaker *gobreaker.CircuitBreaker
	now     func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration, logger *zap.Logger) *RedisLimiter {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "RedisRateLimiter",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &RedisLimiter{
		client:  client,
		prefix:  prefix,
		limit:   int64(limit),
		window:  window,
		breaker: breaker,
		now:     time.Now,
	}
}

func (l *RedisLimiter) windowKey(key string) string {
	windowSeconds := int64(l.window / time.Second)
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, l.now().Unix()/windowSeconds)
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.windowKey(key)

	count, err := l.breaker.Execute(func() (interface{}, error) {
		n, err := l.client.Do(ctx, l.client.B().Incr().Key(redisKey).Build()).AsInt64()
		if err != nil {
			return nil, err
		}

		if n == 1 {
			expire := l.client.B().Expire().Key(redisKey).Seconds(int64(l.window/time.Second) + 1).Build()
			if err := l.client.Do(ctx, expire).Error(); err != nil {
				return nil, err
			}
		}
		return n, nil
	})
	if err != nil {
		return false, err
	}

	return count.(int64) <= l.limit, nil
}
