// Package cache provides the key-value store contract consumed by the
// analysis core.  Two implementations are shipped: an in-process store backed
// by patrickmn/go-cache (the default) and a Redis-backed store for
// multi-replica deployments.  The analysis engines never see which one is in
// use; they depend only on the Cache interface.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
// Callers treat a miss as normal control flow, never as a failure.
var ErrCacheMiss = errors.New(errors.ErrCodeNotFound, "cache miss")

// Cache is the key-value contract used by the analysis core.  Values are
// serialized by the implementation; callers pass any JSON-marshalable value
// to Set and a pointer destination to Get.
type Cache interface {
	// Get loads the value stored under key into dest.  Returns ErrCacheMiss
	// when the key is absent or expired.
	Get(ctx context.Context, key string, dest interface{}) error

	// Set stores value under key with the given TTL.  A zero TTL applies the
	// implementation's default.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.  Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// GetOrSet loads the value under key into dest, invoking loader on a miss
	// and storing its result.  Concurrent misses for the same key invoke
	// loader once (singleflight).
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration,
		loader func(ctx context.Context) (interface{}, error)) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// Key builds a deterministic cache key from the given parts by hashing their
// concatenation.  Hashing keeps keys bounded regardless of input text length
// and avoids leaking clinical text into cache key namespaces.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

//Personal.AI order the ending
