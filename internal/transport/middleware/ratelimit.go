package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter is a fixed-window per-IP request counter guarding the API
// surface. Counters reset when their window elapses; requests beyond the
// limit get 429 with a Retry-After hint.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*windowCounter
	limit     int
	window    time.Duration
	lastSweep time.Time
	logger    *slog.Logger
}

type windowCounter struct {
	count       int
	windowStart time.Time
}

func NewRateLimiter(limit int, window time.Duration, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*windowCounter),
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

// Allow records one request for ip and reports whether it is within the
// window's budget.
func (rl *RateLimiter) Allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now)

	c, ok := rl.clients[ip]
	if !ok {
		c = &windowCounter{windowStart: now}
		rl.clients[ip] = c
	}

	if now.Sub(c.windowStart) > rl.window {
		c.count = 0
		c.windowStart = now
	}

	if c.count >= rl.limit {
		return false
	}

	c.count++
	return true
}

// sweep drops counters whose window has elapsed so the map does not grow
// with every IP seen over the process lifetime. Runs at most once per
// window; callers must hold the mutex.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	for ip, c := range rl.clients {
		if now.Sub(c.windowStart) > rl.window {
			delete(rl.clients, ip)
		}
	}
	rl.lastSweep = now
}

// ActiveClients reports how many IPs currently hold a counter.
func (rl *RateLimiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if !rl.Allow(ip, time.Now()) {
			rl.logger.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
