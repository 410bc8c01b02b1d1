package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency guards anonymous POST endpoints (contact form double-submits)
// with an Idempotency-Key header. Replays within the TTL return the cached
// response; concurrent replays are rejected while the first is in flight.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		caller := c.GetString("user_id")
		if caller == "" {
			caller = c.ClientIP()
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), caller, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached cachedResult
			_ = json.Unmarshal([]byte(val), &cached)
			if cached.Status == 0 {
				cached.Status = http.StatusOK
			}
			c.AbortWithStatusJSON(cached.Status, gin.H{"success": true, "data": cached.Data})
			return
		}

		// Short lock so a server crash never wedges the key.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Sua requisição ainda está sendo processada.",
				"code":    "PROCESSING",
			})
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)
		c.Set("idempotency_ttl", ttl)

		c.Next()
	}
}

// cachedResult is the stored shape of an idempotent response. Status rides
// along so a replay answers with the same code as the first request.
type cachedResult struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// StoreIdempotentResult caches a handler result and its response status under
// the request's idempotency key. Call after a successful mutation.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, status int, result any) {
	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" || rdb == nil {
		return
	}
	ttl, _ := c.Get("idempotency_ttl")
	d, ok := ttl.(time.Duration)
	if !ok || d <= 0 {
		d = 24 * time.Hour
	}

	body, err := json.Marshal(result)
	if err == nil {
		if payload, err := json.Marshal(cachedResult{Status: status, Data: body}); err == nil {
			rdb.Set(c.Request.Context(), cacheKey, string(payload), d)
		}
	}
	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		rdb.Del(c.Request.Context(), lockKey)
	}
}
