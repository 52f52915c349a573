package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter holds one token bucket per key (client IP or user id).
// Buckets idle for longer than limiterIdleTTL are dropped on the next sweep.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	r         rate.Limit
	b         int
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		entries: make(map[string]*limiterEntry),
		r:       r,
		b:       b,
		now:     time.Now,
	}
}

func (l *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, e := range l.entries {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(l.entries, k)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.r, l.b)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// Len reports the number of tracked keys.
func (l *KeyedRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func rateLimit(limiter *KeyedRateLimiter, key func(*gin.Context) string, message string) gin.HandlerFunc {
	retryAfter := "1"
	if limiter.r > 0 {
		retryAfter = strconv.Itoa(int(math.Ceil(1 / float64(limiter.r))))
	}

	return func(c *gin.Context) {
		k := key(c)
		if k == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(k).Allow() {
			c.Header("Retry-After", retryAfter)
			response.Error(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByIP allows r requests per second per client IP with burst b.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	return rateLimit(NewKeyedRateLimiter(r, b), func(c *gin.Context) string { return c.ClientIP() },
		"Too many requests from this IP")
}

// RateLimitByUser allows r requests per second per authenticated user with
// burst b. Anonymous requests pass through.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	return rateLimit(NewKeyedRateLimiter(r, b), func(c *gin.Context) string { return c.GetString("user_id") },
		"Too many requests from this user")
}
