package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"initiative-discovery-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// rateLimitEntry tracks request count for a single client IP.
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// startCleanup drops expired counters so the store cannot grow
// without bound under scanning traffic.
func startCleanup(window time.Duration) {
	cleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(window)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				rateLimitStore.Range(func(key, value any) bool {
					entry := value.(*rateLimitEntry)
					entry.mu.Lock()
					expired := now.After(entry.resetAt)
					entry.mu.Unlock()
					if expired {
						rateLimitStore.Delete(key)
					}
					return true
				})
			}
		}()
	})
}

// RateLimit is a fixed-window, per-IP limiter for abuse-prone routes
// (the login endpoint, mostly). Counters live in process memory; with
// multiple replicas each replica enforces its own window, which is
// acceptable for brute-force damping.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	startCleanup(window)

	return func(c *gin.Context) {
		key := c.ClientIP()

		value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: time.Now().Add(window)})
		entry := value.(*rateLimitEntry)

		entry.mu.Lock()
		now := time.Now()
		if now.After(entry.resetAt) {
			entry.count = 0
			entry.resetAt = now.Add(window)
		}
		entry.count++
		count := entry.count
		retryAfter := time.Until(entry.resetAt)
		entry.mu.Unlock()

		if count > limit {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
