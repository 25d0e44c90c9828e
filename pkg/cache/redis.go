package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// envelope wraps a cached payload with its capture time so freshness can be
// decided client-side. Entries are written without a Redis TTL: an expired
// entry must stay readable through GetStale.
type envelope struct {
	StoredAt time.Time       `json:"stored_at"`
	Payload  json.RawMessage `json:"payload"`
}

// RedisStore implements Store on top of Redis, for deployments that want the
// cache to survive process restarts or be shared between replicas.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed cache store.
func NewRedisStore(opts ...RedisOption) (*RedisStore, error) {
	cfg := &RedisConfig{
		Addr:   "localhost:6379",
		Prefix: "investpulse",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client, prefix: cfg.Prefix}, nil
}

func (s *RedisStore) key(key string) string {
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string, ttl time.Duration, dest interface{}) bool {
	env, ok := s.load(ctx, key)
	if !ok {
		return false
	}
	if time.Since(env.StoredAt) > ttl {
		return false
	}
	return json.Unmarshal(env.Payload, dest) == nil
}

func (s *RedisStore) GetStale(ctx context.Context, key string, dest interface{}) bool {
	env, ok := s.load(ctx, key)
	if !ok {
		return false
	}
	return json.Unmarshal(env.Payload, dest) == nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	b, err := json.Marshal(envelope{StoredAt: time.Now(), Payload: payload})
	if err != nil {
		return
	}
	s.client.Set(ctx, s.key(key), b, 0)
}

func (s *RedisStore) Clear(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		iter := s.client.Scan(ctx, 0, s.prefix+":*", 0).Iterator()
		for iter.Next(ctx) {
			s.client.Del(ctx, iter.Val())
		}
		return
	}
	for _, key := range keys {
		s.client.Del(ctx, s.key(key))
	}
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) load(ctx context.Context, key string) (envelope, bool) {
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		return envelope{}, false
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return envelope{}, false
	}
	return env, true
}
