package store

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	Logger "github.com/blogmux/blogmux/utils/log"
	"github.com/go-redis/redis/v8"
)

// cacheTimeout bounds every cache round trip. The cache is never
// authoritative, so a slow or absent redis only costs a DB count.
const cacheTimeout = 200 * time.Millisecond

// LikeCache is a redis-backed cache of per-article like counts. A nil
// *LikeCache is valid and behaves as a permanent miss.
type LikeCache struct {
	inner *redis.Client
}

// NewLikeCacheFromEnv returns a cache talking to REDIS_HOST:REDIS_PORT, or
// nil when REDIS_HOST is unset.
func NewLikeCacheFromEnv() *LikeCache {
	if os.Getenv("REDIS_HOST") == "" {
		return nil
	}
	return &LikeCache{
		inner: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
			Password: os.Getenv("REDIS_PASSWD"),
			DB:       0, // use default DB
		})}
}

func likeCountKey(articleID string) string {
	return "like_count_" + articleID
}

func (c *LikeCache) Get(ctx context.Context, articleID string) (int64, bool) {
	if c == nil {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	v, err := c.inner.Get(ctx, likeCountKey(articleID)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *LikeCache) Set(ctx context.Context, articleID string, n int64) {
	if c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	if err := c.inner.Set(ctx, likeCountKey(articleID), n, 0).Err(); err != nil {
		Logger.Log.Warn("like cache set failed: ", err)
	}
}

// Invalidate drops the cached count for an article. Called by the toggle
// after a successful like or unlike.
func (c *LikeCache) Invalidate(ctx context.Context, articleID string) {
	if c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	if err := c.inner.Del(ctx, likeCountKey(articleID)).Err(); err != nil {
		Logger.Log.Warn("like cache invalidation failed: ", err)
	}
}
