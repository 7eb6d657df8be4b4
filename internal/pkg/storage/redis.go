package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps entries in redis so sessions survive restarts and are
// shared between replicas.
type RedisStorage struct {
	client     *redis.Client
	defaultTTL time.Duration
}

type RedisOptions struct {
	Addr       string
	Password   string
	DB         int
	DefaultTTL time.Duration
}

func NewRedisStorage(ctx context.Context, opts RedisOptions) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "redis connection failed")
	}

	return &RedisStorage{client: client, defaultTTL: opts.DefaultTTL}, nil
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}
	return v, true, nil
}

func (s *RedisStorage) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	return errors.Wrapf(s.client.Set(ctx, key, value, ttl).Err(), "redis set %s", key)
}

func (s *RedisStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return errors.Wrap(s.client.Del(ctx, keys...).Err(), "redis del")
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}
