package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces the keys written by Redis.
const DefaultRedisPrefix = "exturl:"

// Redis stores URLs as Redis string keys.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to the Redis server at dsn, which is either a
// redis:// URL or a host:port address, and pings it.
func NewRedis(ctx context.Context, dsn string) (*Redis, error) {
	opts, err := redisOptions(dsn)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedisClient(client, DefaultRedisPrefix), nil
}

// NewRedisClient wraps an existing client. Keys are stored as prefix+key.
func NewRedisClient(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func redisOptions(dsn string) (*redis.Options, error) {
	if dsn == "" {
		return &redis.Options{Addr: "localhost:6379"}, nil
	}
	if strings.HasPrefix(dsn, "redis://") || strings.HasPrefix(dsn, "rediss://") {
		opts, err := redis.ParseURL(dsn)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opts, nil
	}
	return &redis.Options{Addr: dsn}, nil
}

// Save sets key to url without expiry.
func (r *Redis) Save(ctx context.Context, key, url string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.prefix+key, url, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// Load returns the value of key.
func (r *Redis) Load(ctx context.Context, key string) (string, error) {
	url, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load %q: %w", key, err)
	}
	return url, nil
}

// Delete removes key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	n, err := r.client.Del(ctx, r.prefix+key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}
