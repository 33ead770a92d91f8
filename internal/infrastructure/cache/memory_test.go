package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

type payload struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache(nil, time.Minute)
	ctx := context.Background()

	in := payload{Name: "aortic stenosis", Score: 0.92}
	require.NoError(t, c.Set(ctx, "k1", in, time.Minute))

	var out payload
	require.NoError(t, c.Get(ctx, "k1", &out))
	assert.Equal(t, in, out)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache(nil, time.Minute)

	var out payload
	err := c.Get(context.Background(), "absent", &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(nil, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", payload{Name: "x"}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var out payload
	assert.ErrorIs(t, c.Get(ctx, "short", &out), ErrCacheMiss)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache(nil, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", payload{Name: "a"}, time.Minute))
	require.NoError(t, c.Set(ctx, "b", payload{Name: "b"}, time.Minute))
	require.NoError(t, c.Delete(ctx, "a", "b", "missing"))

	var out payload
	assert.ErrorIs(t, c.Get(ctx, "a", &out), ErrCacheMiss)
	assert.ErrorIs(t, c.Get(ctx, "b", &out), ErrCacheMiss)
}

func TestMemoryCacheGetOrSet(t *testing.T) {
	c := NewMemoryCache(nil, time.Minute)
	ctx := context.Background()

	var calls int32
	loader := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return payload{Name: "loaded", Score: 0.8}, nil
	}

	var out payload
	require.NoError(t, c.GetOrSet(ctx, "k", &out, time.Minute, loader))
	assert.Equal(t, "loaded", out.Name)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// Second call hits the cache; loader must not run again.
	var out2 payload
	require.NoError(t, c.GetOrSet(ctx, "k", &out2, time.Minute, loader))
	assert.Equal(t, out, out2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestMemoryCacheGetOrSetLoaderError(t *testing.T) {
	c := NewMemoryCache(nil, time.Minute)

	boom := errors.Internal("loader failed")
	var out payload
	err := c.GetOrSet(context.Background(), "k", &out, time.Minute,
		func(ctx context.Context) (interface{}, error) { return nil, boom })
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// A failed load must not poison the cache.
	assert.ErrorIs(t, c.Get(context.Background(), "k", &out), ErrCacheMiss)
}

func TestMemoryCacheGetOrSetSingleflight(t *testing.T) {
	c := NewMemoryCache(nil, time.Minute)
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	loader := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return payload{Name: "shared"}, nil
	}

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			var out payload
			assert.NoError(t, c.GetOrSet(ctx, "hot", &out, time.Minute, loader))
			assert.Equal(t, "shared", out.Name)
		}()
	}
	close(start)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestMemoryCachePing(t *testing.T) {
	c := NewMemoryCache(nil, time.Minute)
	assert.NoError(t, c.Ping(context.Background()))
}

func TestKeyDeterministic(t *testing.T) {
	assert.Equal(t, Key("analysis", "some text"), Key("analysis", "some text"))
	assert.NotEqual(t, Key("analysis", "some text"), Key("analysis", "other text"))
	// Part boundaries matter: ("ab","c") != ("a","bc").
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
	assert.Len(t, Key("x"), 64)
}

//Personal.AI order the ending
