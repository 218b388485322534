package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is the JSON key/value surface the Cached decorator needs.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// RedisCache is a Cache over go-redis. When the server cannot be reached at
// construction it degrades to a no-op and every read is a miss.
type RedisCache struct {
	client *redis.Client
	logger *zap.Logger

	warned atomic.Bool
}

var _ Cache = (*RedisCache)(nil)

// RedisOptions configures NewRedisCache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisCache connects and pings. A failed ping is logged and yields a
// bypassing cache rather than an error.
func NewRedisCache(ctx context.Context, opts RedisOptions, logger *zap.Logger) *RedisCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, bypassing cache", zap.String("addr", opts.Addr), zap.Error(err))
		_ = client.Close()
		return &RedisCache{logger: logger}
	}

	logger.Debug("redis cache connected", zap.String("addr", opts.Addr))
	return &RedisCache{client: client, logger: logger}
}

// Available reports whether the cache talks to a server.
func (r *RedisCache) Available() bool {
	return r != nil && r.client != nil
}

func (r *RedisCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnOnce(err)
		return err
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if !r.Available() || len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.warnOnce(err)
		return err
	}
	return nil
}

func (r *RedisCache) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}

func (r *RedisCache) warnOnce(err error) {
	if r.warned.CompareAndSwap(false, true) {
		r.logger.Warn("redis error, continuing without cache", zap.Error(err))
	}
}
