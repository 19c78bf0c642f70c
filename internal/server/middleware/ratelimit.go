package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/thema/internal/server/cache"
	"github.com/agentstation/thema/internal/server/response"
	"github.com/agentstation/thema/pkg/constants"
)

// RateLimiter implements fixed-window rate limiting per client IP.
// Client buckets live in a TTL cache, so idle clients are forgotten
// without a cleanup goroutine of our own.
type RateLimiter struct {
	visitors  *cache.Cache
	limit     int           // requests per window
	window    time.Duration // length of a window
	logger    *zerolog.Logger
	onLimited func()
}

// visitor tracks rate limit state for a single IP.
type visitor struct {
	mu        sync.Mutex
	tokens    int
	lastReset time.Time
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithWindow sets the window length.
func WithWindow(d time.Duration) RateLimiterOption {
	return func(rl *RateLimiter) {
		if d > 0 {
			rl.window = d
		}
	}
}

// WithLimitHook registers a function called for every rejected request.
func WithLimitHook(fn func()) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.onLimited = fn
	}
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// window (one minute unless WithWindow is given) per client IP.
func NewRateLimiter(limit int, logger *zerolog.Logger, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		visitors: cache.New(constants.VisitorTTL, constants.VisitorCleanupInterval),
		limit:    limit,
		window:   constants.RateLimitWindow,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// getVisitor returns or creates a visitor for the IP.
func (rl *RateLimiter) getVisitor(ip string) *visitor {
	return rl.visitors.GetOrCreate(ip, func() any {
		return &visitor{tokens: rl.limit, lastReset: time.Now()}
	}).(*visitor)
}

// Allow reports whether a request from ip may proceed and how many
// requests remain in the current window.
func (rl *RateLimiter) Allow(ip string) (bool, int) {
	v := rl.getVisitor(ip)

	v.mu.Lock()
	defer v.mu.Unlock()

	// Reset tokens if the window has passed
	if time.Since(v.lastReset) >= rl.window {
		v.tokens = rl.limit
		v.lastReset = time.Now()
	}

	if v.tokens > 0 {
		v.tokens--
		return true, v.tokens
	}
	return false, 0
}

// Clients returns the number of tracked client IPs.
func (rl *RateLimiter) Clients() int {
	return rl.visitors.ItemCount()
}

// RateLimit middleware limits requests per client IP.
func RateLimit(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, remaining := rl.Allow(ip)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !allowed {
				rl.logger.Warn().
					Str("ip", ip).
					Str("path", r.URL.Path).
					Msg("Rate limit exceeded")
				if rl.onLimited != nil {
					rl.onLimited()
				}

				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				response.RateLimited(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the first X-Forwarded-For address, or the host part of
// RemoteAddr.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
