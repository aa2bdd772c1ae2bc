//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelier-hub/internal/handler/middleware"
	"hotelier-hub/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(t *testing.T, cfg config.RateLimitConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	rl := middleware.NewRateLimiter(cfg)
	t.Cleanup(rl.Close)
	router.GET("/ping", rl.Limit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func performFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BurstExhaustion(t *testing.T) {
	router := newLimitedRouter(t, config.RateLimitConfig{PublicRPS: 1, PublicBurst: 2})

	w := performFrom(router, "203.0.113.10:1234")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performFrom(router, "203.0.113.10:1234")
	assert.Equal(t, http.StatusOK, w.Code)

	// Burst of 2 is spent; the refill rate is far too slow to matter here.
	w = performFrom(router, "203.0.113.10:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimiter_PerClientBuckets(t *testing.T) {
	router := newLimitedRouter(t, config.RateLimitConfig{PublicRPS: 1, PublicBurst: 1})

	w := performFrom(router, "203.0.113.10:1234")
	assert.Equal(t, http.StatusOK, w.Code)
	w = performFrom(router, "203.0.113.10:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client still has its own budget.
	w = performFrom(router, "198.51.100.7:4321")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_CloseIsIdempotent(t *testing.T) {
	rl := middleware.NewRateLimiter(config.RateLimitConfig{PublicRPS: 1, PublicBurst: 1})
	rl.Close()
	rl.Close()
}
