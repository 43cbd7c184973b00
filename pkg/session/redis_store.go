package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists sessions in Redis, for running the shop with
// STORE_DRIVER=redis where Redis is already a dependency.
type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, ctx: context.Background()}
}

func sessionKey(id string) string { return "quickstationery:session:" + id }

func (s *RedisStore) Load(id string) (map[string]interface{}, error) {
	raw, err := s.rdb.Get(s.ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session/redis: load: %w", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("session/redis: unmarshal: %w", err)
	}
	return data, nil
}

func (s *RedisStore) Save(id string, data map[string]interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session/redis: marshal: %w", err)
	}
	if err := s.rdb.Set(s.ctx, sessionKey(id), raw, ttl).Err(); err != nil {
		return fmt.Errorf("session/redis: save: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(id string) error {
	if err := s.rdb.Del(s.ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("session/redis: delete: %w", err)
	}
	return nil
}
