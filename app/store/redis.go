package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/quickstationery/config"
)

// RedisDriver keeps records in Redis, one string value per record key.
// Records are written without TTL: the store is the backend, not a cache.
type RedisDriver struct {
	rdb *redis.Client
	ctx context.Context
}

func redisKey(key string) string { return "quickstationery:record:" + key }

// NewRedisDriver connects to Redis and verifies the connection with a ping.
func NewRedisDriver() (*RedisDriver, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("store/redis: ping: %w", err)
	}
	return &RedisDriver{rdb: rdb, ctx: ctx}, nil
}

func (d *RedisDriver) Read(key string) ([]byte, bool, error) {
	raw, err := d.rdb.Get(d.ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store/redis: get %s: %w", key, err)
	}
	return raw, true, nil
}

func (d *RedisDriver) Write(key string, value []byte) error {
	if err := d.rdb.Set(d.ctx, redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("store/redis: set %s: %w", key, err)
	}
	return nil
}

func (d *RedisDriver) Delete(key string) error {
	if err := d.rdb.Del(d.ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("store/redis: del %s: %w", key, err)
	}
	return nil
}
