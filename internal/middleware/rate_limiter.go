package middleware

import (
	"context"
	"sync"
	"time"

	"bank-accounts/internal/errors"
	"bank-accounts/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu                sync.Mutex
	visitors          map[string]*visitor
	requestsPerSecond int
	burstSize         int
}

// NewRateLimiter creates a limiter allowing rps requests per second per IP with the given burst
func NewRateLimiter(rps, burst int) *RateLimiter {
	if rps <= 0 {
		rps = 5
	}
	if burst < rps {
		burst = 2 * rps
	}
	return &RateLimiter{
		visitors:          make(map[string]*visitor),
		requestsPerSecond: rps,
		burstSize:         burst,
	}
}

// Middleware rejects requests above the limit with SYSTEM_006
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.getVisitor(getIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// Run evicts idle visitors until ctx is done
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(rl.requestsPerSecond), rl.burstSize)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func getIP(c echo.Context) string {
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}
