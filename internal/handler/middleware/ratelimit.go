package middleware

import (
	"net/http"
	"sync"
	"time"

	"hotelier-hub/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter tracks a token bucket per client IP. Stale entries are
// evicted so the map does not grow without bound.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	rps      rate.Limit
	burst    int
	stop     chan struct{}
	stopOnce sync.Once
}

const rateLimiterIdleTTL = 10 * time.Minute

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(cfg.PublicRPS),
		burst:   cfg.PublicBurst,
		stop:    make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

// Close stops the eviction goroutine. Safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit throttles unauthenticated traffic per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-rateLimiterIdleTTL)
			rl.mu.Lock()
			for ip, cl := range rl.clients {
				if cl.lastSeen.Before(cutoff) {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}
