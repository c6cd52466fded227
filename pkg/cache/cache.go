// Package cache is a small JSON read-through cache over Redis.
//
// Every helper is nil-safe: when Redis is not configured or unreachable the
// cache degrades to a no-op and callers fall through to the store.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shashiranjanraj/foodmart/config"
	"github.com/shashiranjanraj/foodmart/pkg/metrics"
)

var RDB *redis.Client

// Connect initialises the shared Redis client. A failed ping leaves the
// client nil so the application keeps serving from Mongo alone.
func Connect() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		RDB = nil
		return
	}
	RDB = client
}

// Get loads key into dest. Returns false on miss, absent client, or decode
// failure, and records hit/miss counters either way.
func Get(ctx context.Context, key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}

	val, err := RDB.Get(ctx, key).Result()
	if err != nil {
		metrics.CacheMisses.WithLabelValues(key).Inc()
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.CacheMisses.WithLabelValues(key).Inc()
		return false
	}

	metrics.CacheHits.WithLabelValues(key).Inc()
	return true
}

// Set stores value under key for ttl. Errors are returned but callers may
// safely ignore them; a failed cache write never fails a request.
func Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return RDB.Set(ctx, key, data, ttl).Err()
}

// Forget removes a key.
func Forget(ctx context.Context, key string) {
	if RDB == nil {
		return
	}
	RDB.Del(ctx, key)
}
