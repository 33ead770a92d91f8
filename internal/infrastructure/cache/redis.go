package cache

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/turtacn/MedText-Intelligence/internal/config"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// redisCache is the Redis-backed Cache implementation, used when multiple
// replicas must share analysis results.  TTLs are jittered ±10% so that
// entries written together do not expire together.
type redisCache struct {
	client       *redis.Client
	logger       logging.Logger
	prefix       string
	defaultTTL   time.Duration
	singleflight singleflight.Group
}

// RedisOption customises a Redis cache at construction.
type RedisOption func(*redisCache)

// WithPrefix overrides the key namespace prefix (default "medtext:").
func WithPrefix(prefix string) RedisOption {
	return func(c *redisCache) { c.prefix = prefix }
}

// WithDefaultTTL overrides the TTL applied when Set receives 0.
func WithDefaultTTL(ttl time.Duration) RedisOption {
	return func(c *redisCache) { c.defaultTTL = ttl }
}

// NewRedisCache constructs a Redis-backed Cache from the given configuration.
func NewRedisCache(cfg config.RedisConfig, log logging.Logger, opts ...RedisOption) Cache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	c := &redisCache{
		client:     client,
		logger:     log,
		prefix:     cfg.KeyPrefix,
		defaultTTL: 15 * time.Minute,
	}
	if c.prefix == "" {
		c.prefix = "medtext:"
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *redisCache) fullKey(key string) string {
	return c.prefix + key
}

func (c *redisCache) jitterTTL(ttl time.Duration) time.Duration {
	if ttl == 0 {
		return 0
	}
	// +/- 10%
	jitter := float64(ttl) * 0.1 * (rand.Float64()*2 - 1)
	return ttl + time.Duration(jitter)
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "failed to get from cache")
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	ttl = c.jitterTTL(ttl)

	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to serialize cache value")
	}
	return c.client.Set(ctx, c.fullKey(key), data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	fullKeys := make([]string, len(keys))
	for i, k := range keys {
		fullKeys[i] = c.fullKey(k)
	}
	return c.client.Del(ctx, fullKeys...).Err()
}

func (c *redisCache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration,
	loader func(ctx context.Context) (interface{}, error)) error {

	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	} else if !errors.IsCode(err, errors.ErrCodeNotFound) &&
		!errors.IsCode(err, errors.ErrCodeCacheError) {
		return err
	}

	val, err, _ := c.singleflight.Do(key, func() (interface{}, error) {
		v, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		if setErr := c.Set(ctx, key, v, ttl); setErr != nil {
			c.logger.Warn("failed to populate cache", logging.Err(setErr))
		}
		return v, nil
	})
	if err != nil {
		return err
	}

	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to serialize loaded value")
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

//Personal.AI order the ending
