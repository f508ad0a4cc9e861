package cache_test

import (
	"context"
	"portfolio/infras/otel/mocks"
	"portfolio/shared/cache"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPost struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func setupCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), mr
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "post:hello", cachedPost{Slug: "hello", Title: "Hello"}, 60))

	var got cachedPost
	require.NoError(t, c.Get(ctx, "post:hello", &got))
	assert.Equal(t, cachedPost{Slug: "hello", Title: "Hello"}, got)

	mr.FastForward(61 * time.Second)

	err := c.Get(ctx, "post:hello", &got)
	require.Error(t, err)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_GetString(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "greeting", "hi", 60))

	var got string
	require.NoError(t, c.Get(ctx, "greeting", &got))
	assert.Equal(t, "hi", got)
}

func TestRedisCache_Increment(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := c.Increment(ctx, "limiter:1.2.3.4", 10)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	mr.FastForward(11 * time.Second)

	count, err := c.Increment(ctx, "limiter:1.2.3.4", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRedisCache_Clear(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "posts:page:1", "a", 60))
	require.NoError(t, c.Save(ctx, "posts:page:2", "b", 60))
	require.NoError(t, c.Save(ctx, "projects", "c", 60))

	require.NoError(t, c.Clear(ctx, "posts*"))

	assert.False(t, mr.Exists("posts:page:1"))
	assert.False(t, mr.Exists("posts:page:2"))
	assert.True(t, mr.Exists("projects"))

	require.NoError(t, c.Delete(ctx, "projects"))
	assert.False(t, mr.Exists("projects"))
}

func TestRedisCache_Unavailable(t *testing.T) {
	c, mr := setupCache(t)
	mr.Close()

	var got string
	err := c.Get(context.Background(), "anything", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, cache.Nil)
}
