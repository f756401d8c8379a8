package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopfront/shopfront-backend/pkg/logger"
)

// RedisStore persists sessions in Redis with a TTL, so expiry needs no
// separate cleanup job.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Data, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch session from Redis", err, map[string]interface{}{
			"session_id": id,
		})
		return nil, err
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		logger.Error("Failed to decode session payload", err, map[string]interface{}{
			"session_id": id,
		})
		return nil, err
	}
	return &data, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, data *Data, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, sessionKey(id), payload, ttl).Err(); err != nil {
		logger.Error("Failed to store session in Redis", err, map[string]interface{}{
			"session_id": id,
		})
		return err
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		logger.Error("Failed to delete session from Redis", err, map[string]interface{}{
			"session_id": id,
		})
		return err
	}
	return nil
}
