package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// RedisStorage implements domain.Storage on a Redis key space. Each store
// document is a single JSON value with a TTL so abandoned browser sessions
// age out on their own.
type RedisStorage struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStorage creates a Redis-backed storage layer.
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{
		client: client,
		prefix: "hemolink:",
		ttl:    ttl,
	}
}

// Read implements domain.Storage.
func (s *RedisStorage) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write implements domain.Storage.
func (s *RedisStorage) Write(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, s.ttl).Err()
}

// Delete implements domain.Storage.
func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Ping verifies the connection at startup.
func (s *RedisStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
