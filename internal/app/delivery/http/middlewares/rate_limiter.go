package middlewares

import (
	"net"
	"net/http"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter guards credential-sensitive routes with a stricter policy than
// the router-wide per-IP limit: a client that exhausts its burst is blocked
// outright for a cool-off window instead of merely being slowed down.
type RateLimiter struct {
	log      *zap.Logger
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	blocked  map[string]time.Time
	attempts int
	per      time.Duration
	coolOff  time.Duration
}

func NewRateLimiter(log *zap.Logger, attempts int, per, coolOff time.Duration) *RateLimiter {
	return &RateLimiter{
		log:      log,
		limiters: make(map[string]*rate.Limiter),
		blocked:  make(map[string]time.Time),
		attempts: attempts,
		per:      per,
		coolOff:  coolOff,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddr(r)

		rl.mu.Lock()
		if until, found := rl.blocked[client]; found {
			if time.Now().Before(until) {
				rl.mu.Unlock()
				utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyAttempts(nil))
				return
			}
			delete(rl.blocked, client)
		}

		limiter, ok := rl.limiters[client]
		if !ok {
			limiter = rate.NewLimiter(rate.Every(rl.per), rl.attempts)
			rl.limiters[client] = limiter
		}
		rl.mu.Unlock()

		if !limiter.Allow() {
			rl.mu.Lock()
			rl.blocked[client] = time.Now().Add(rl.coolOff)
			rl.mu.Unlock()

			rl.log.Warn("client blocked after exhausting its attempt budget",
				zap.String(constvars.LoggingRemoteAddrKey, client),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyAttempts(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientAddr strips the port from RemoteAddr; proxies rewriting the address
// are expected to sit outside this service.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
