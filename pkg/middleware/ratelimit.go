package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/vfg2006/magnus-console/pkg/apiErrors"
	"github.com/vfg2006/magnus-console/pkg/log"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter mantém um token bucket por IP de origem
type RateLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	clients   map[string]*clientLimiter
	now       func() time.Time
	lastPrune time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(requestsPerSecond),
		burst:   burst,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

// Allow consome um token do cliente
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastPrune) > time.Minute {
		for key, entry := range rl.clients {
			if now.Sub(entry.lastSeen) > limiterIdleTTL {
				delete(rl.clients, key)
			}
		}
		rl.lastPrune = now
	}

	entry, ok := rl.clients[client]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[client] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// RateLimitMiddleware devolve 429 quando o cliente estoura o limite.
// requestsPerSecond <= 0 desliga o limite.
func RateLimitMiddleware(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := NewRateLimiter(requestsPerSecond, burst)
	retryAfter := strconv.Itoa(int(1/requestsPerSecond) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientIP(r)
			if !limiter.Allow(client) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":      r.URL.Path,
					"client_ip": client,
				}).Warn("limite de requisições excedido")

				w.Header().Set("Retry-After", retryAfter)
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Too many requests", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
