package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "glossary:definition:"

// RedisStore keeps entries as plain string values without expiry; negative entries carry
// their own timestamp.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	// redis://host:port or redis://host:port/db
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL > %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("client.Ping > %w", err)
	}

	slog.Default().Debug("connected to redis", "addr", opts.Addr)
	return &RedisStore{client: client}, nil
}

// RedisKey is the key an entry is stored under, e.g. "glossary:definition:fi:koira".
func RedisKey(languageCode, word string) (string, error) {
	languageCode, word, err := normalizeKey(languageCode, word)
	if err != nil {
		return "", err
	}
	return redisKeyPrefix + languageCode + ":" + word, nil
}

func (s *RedisStore) Get(ctx context.Context, languageCode, word string) ([]byte, error) {
	key, err := RedisKey(languageCode, word)
	if err != nil {
		return nil, fmt.Errorf("RedisKey > %w", err)
	}
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get > %w", err)
	}
	return payload, nil
}

func (s *RedisStore) Put(ctx context.Context, languageCode, word string, payload []byte) error {
	key, err := RedisKey(languageCode, word)
	if err != nil {
		return fmt.Errorf("RedisKey > %w", err)
	}
	// TTL 0 = no expiration
	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("client.Set > %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, languageCode, word string) error {
	key, err := RedisKey(languageCode, word)
	if err != nil {
		return fmt.Errorf("RedisKey > %w", err)
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("client.Del > %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
