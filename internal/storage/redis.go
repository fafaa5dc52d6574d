package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"timetable/internal/table"
)

const keyPrefix = "timetable:table:"

// RedisStore хранит таблицы в Redis в виде JSON с TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создаёт хранилище поверх готового клиента Redis.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, t *table.Table) (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("storage: encode table: %w", err)
	}
	id := newID()
	if err := s.client.Set(ctx, keyPrefix+id, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("storage: redis set: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (*table.Table, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: redis get: %w", err)
	}

	var t table.Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("storage: decode table: %w", err)
	}
	return &t, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	n, err := s.client.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("storage: redis del: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
