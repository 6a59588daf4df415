package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-scaler/internal/pkg/common"
)

const defaultDedupWindow = time.Second

// requestCache fingerprints of recent POST requests
type requestCache struct {
	sync.Mutex
	requests map[string]time.Time
	window   time.Duration
}

func newRequestCache(window time.Duration) *requestCache {
	if window <= 0 {
		window = defaultDedupWindow
	}
	return &requestCache{
		requests: make(map[string]time.Time),
		window:   window,
	}
}

// seen records fingerprint and reports whether it was already seen within the window
func (rc *requestCache) seen(fingerprint string, now time.Time) bool {
	rc.Lock()
	defer rc.Unlock()

	if last, exists := rc.requests[fingerprint]; exists && now.Sub(last) <= rc.window {
		return true
	}
	rc.requests[fingerprint] = now
	return false
}

// purge drops fingerprints older than ten windows
func (rc *requestCache) purge(now time.Time) {
	rc.Lock()
	defer rc.Unlock()

	for k, t := range rc.requests {
		if now.Sub(t) > 10*rc.window {
			delete(rc.requests, k)
		}
	}
}

func (rc *requestCache) startCleanup(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			rc.purge(now)
		case <-done:
			return
		}
	}
}

// Deduplication rejects an identical POST (same client, path and body) repeated within window.
// The cleanup goroutine stops when done is closed; done may be nil.
func Deduplication(window time.Duration, done <-chan struct{}) gin.HandlerFunc {
	cache := newRequestCache(window)
	go cache.startCleanup(10*time.Minute, done)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		fingerprint := c.ClientIP() + ":" + c.Request.Method + ":" + c.Request.URL.Path
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogWarn("Failed to read request body", zap.Error(err))
				c.AbortWithStatusJSON(common.ErrRequestTooLarge.Status, common.ErrRequestTooLarge.Response(false))
				return
			}

			hash := sha256.Sum256(body)
			fingerprint += ":" + hex.EncodeToString(hash[:])

			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		if cache.seen(fingerprint, time.Now()) {
			common.LogDebug("Duplicate request rejected", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(common.ErrTooManyRequests.Status, common.ErrTooManyRequests.Response(false))
			return
		}

		c.Next()
	}
}
