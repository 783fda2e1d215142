package delivery

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// SignInLimiter throttles credential guessing per client IP. Each IP gets a
// token bucket; entries idle past the cleanup TTL are dropped to bound
// memory.
type SignInLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rate     rate.Limit
	burst    int
	stopCh   chan struct{}
}

type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewSignInLimiter allows `burst` immediate attempts per IP, refilled at
// `perMinute` attempts a minute, and starts a background cleanup loop.
func NewSignInLimiter(perMinute float64, burst int) *SignInLimiter {
	l := &SignInLimiter{
		limiters: make(map[string]*ipLimiter),
		rate:     rate.Limit(perMinute / 60.0),
		burst:    burst,
		stopCh:   make(chan struct{}),
	}
	go l.cleanupLoop(5 * time.Minute)
	return l
}

func (l *SignInLimiter) Stop() {
	close(l.stopCh)
}

func (l *SignInLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many sign-in attempts. Please try again later.",
				"success": false,
				"error":   true,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (l *SignInLimiter) allow(key string) bool {
	l.mu.Lock()
	entry, ok := l.limiters[key]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastAccess = time.Now()
	l.mu.Unlock()

	return entry.limiter.Allow()
}

func (l *SignInLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ttl := interval * 2
			now := time.Now()
			l.mu.Lock()
			for key, entry := range l.limiters {
				if now.Sub(entry.lastAccess) > ttl {
					delete(l.limiters, key)
				}
			}
			l.mu.Unlock()
		case <-l.stopCh:
			return
		}
	}
}
