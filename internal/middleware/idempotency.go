package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// idempotentResult is what handlers cache: the original status is stored
// next to the payload so a replay answers exactly like the first attempt.
type idempotentResult struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency replays the cached response for a repeated Idempotency-Key on
// mutating POSTs and rejects a second in-flight attempt while the first is
// still running. Handlers release the lock and fill the cache on success
// via StoreIdempotentResult.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id")

		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached idempotentResult
			if json.Unmarshal([]byte(val), &cached) == nil && cached.Status != 0 {
				c.AbortWithStatusJSON(cached.Status, gin.H{"ok": true, "data": cached.Data})
				return
			}
		}

		// Short lock expiry so a crashed worker does not wedge the key.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"ok": false,
				"error": gin.H{
					"code":    "PROCESSING",
					"message": "A request with this idempotency key is already in progress",
				},
			})
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// StoreIdempotentResult caches a successful response, status included, under
// the key Idempotency placed in the context. No-op when the request carried
// no Idempotency-Key.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, status int, data any) {
	if rdb == nil {
		return
	}
	ck, ok := c.Get("idempotency_cache_key")
	cacheKey, _ := ck.(string)
	if !ok || cacheKey == "" {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	entry, err := json.Marshal(idempotentResult{Status: status, Data: payload})
	if err != nil {
		return
	}
	_ = rdb.Set(c.Request.Context(), cacheKey, entry, idempotencyTTL).Err()
}
