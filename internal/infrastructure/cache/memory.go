package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// memoryCache is the default Cache implementation: an in-process TTL store.
// Values are stored as JSON bytes so Get/Set round-trip behaviour is identical
// to the Redis implementation, keeping backend choice invisible to callers.
type memoryCache struct {
	store        *gocache.Cache
	logger       logging.Logger
	defaultTTL   time.Duration
	singleflight singleflight.Group
}

// MemoryOption customises a memory cache at construction.
type MemoryOption func(*memoryCache)

// WithMemoryDefaultTTL overrides the default TTL applied when Set receives 0.
func WithMemoryDefaultTTL(ttl time.Duration) MemoryOption {
	return func(c *memoryCache) { c.defaultTTL = ttl }
}

// NewMemoryCache constructs an in-process Cache with the given cleanup
// interval.  Expired entries are evicted lazily on read and in bulk by the
// janitor every cleanupInterval.
func NewMemoryCache(log logging.Logger, cleanupInterval time.Duration, opts ...MemoryOption) Cache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 5 * time.Minute
	}
	c := &memoryCache{
		store:      gocache.New(gocache.NoExpiration, cleanupInterval),
		logger:     log,
		defaultTTL: 15 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	val, found := c.store.Get(key)
	if !found {
		return ErrCacheMiss
	}
	data, ok := val.([]byte)
	if !ok {
		return errors.New(errors.ErrCodeSerialization, "unexpected cache value type")
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to serialize cache value")
	}
	c.store.Set(key, data, ttl)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		c.store.Delete(k)
	}
	return nil
}

func (c *memoryCache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration,
	loader func(ctx context.Context) (interface{}, error)) error {

	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	} else if !errors.IsCode(err, errors.ErrCodeNotFound) {
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

	// Round-trip through JSON so dest is populated the same way as Get.
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to serialize loaded value")
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) Ping(_ context.Context) error { return nil }

//Personal.AI order the ending
