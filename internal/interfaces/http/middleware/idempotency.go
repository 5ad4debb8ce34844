package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"alumni-connect.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response when a request with
// the same Idempotency-Key is retried. Keys are scoped per user so two
// members can reuse the same key.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, _ := GetUserID(c)
		storageKey := fmt.Sprintf("idempotency:%s:%s", userID, key)
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		if err == nil {
			if val == "processing" {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"error": "Request already in progress",
				})
				return
			}

			status, body := splitStoredResponse(val)
			c.Header("Content-Type", "application/json")
			c.Header("X-Idempotency-Hit", "true")
			c.String(status, body)
			c.Abort()
			return
		}

		acquired, err := redisSetNX(ctx, storageKey, "processing", LockDuration)
		if err != nil {
			// Redis trouble should not block the request itself.
			c.Next()
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "Request already in progress",
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		// Keep successful responses for replay; clear failures so the
		// client can retry. The status code rides along so a 201 replays
		// as a 201.
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			stored := fmt.Sprintf("%d\n%s", c.Writer.Status(), w.body.String())
			_ = redisSet(ctx, storageKey, stored, RetentionDuration)
		} else {
			_ = redisDel(ctx, storageKey)
		}
	}
}

// splitStoredResponse separates the status-code prefix from the body.
// Entries without a parsable prefix replay as 200.
func splitStoredResponse(val string) (int, string) {
	if i := strings.IndexByte(val, '\n'); i > 0 {
		if status, err := strconv.Atoi(val[:i]); err == nil && status >= 200 && status < 300 {
			return status, val[i+1:]
		}
	}
	return http.StatusOK, val
}
