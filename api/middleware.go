/*
middleware.go - Request middleware: authentication, rate limiting, demo guard

PURPOSE:
  Cross-cutting request handling that runs before the handlers:
  - requireAuth validates the bearer token and puts the caller's
    identity on the request context. Handlers never parse tokens.
  - rateLimiter is a fixed-window in-memory limiter keyed by client IP,
    applied to the auth endpoints to slow down credential stuffing.
  - blockDemoWrites rejects mutations from the shared demo account.

SEE ALSO:
  - auth/token.go: Token issuing and validation
  - server.go: Where these are mounted
*/
package api

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/unchain0/sistema-ferias/auth"
)

type contextKey string

const (
	ctxUserID contextKey = "userID"
	ctxEmail  contextKey = "email"
)

// userID returns the authenticated caller's id, or "" if the request
// did not pass requireAuth.
func userID(ctx context.Context) string {
	id, _ := ctx.Value(ctxUserID).(string)
	return id
}

func userEmail(ctx context.Context) string {
	email, _ := ctx.Value(ctxEmail).(string)
	return email
}

// requireAuth rejects requests without a valid bearer token and scopes
// the request context to the token's user.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := auth.ExtractToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authorized", nil)
			return
		}
		claims, err := h.tokens.Validate(tokenString)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authorized", nil)
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
		ctx = context.WithValue(ctx, ctxEmail, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// blockDemoWrites returns 403 for mutations issued by the demo account.
// The demo data is shared; visitors can look but not touch.
func (h *Handler) blockDemoWrites(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && h.isDemoUser(userEmail(r.Context())) {
			writeJSON(w, http.StatusForbidden, ErrorResponse{
				Error: "Demo mode: modifications are not allowed",
				Demo:  true,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) isDemoUser(email string) bool {
	return h.demo.Enabled && email != "" && strings.EqualFold(email, h.demo.Email)
}

// =============================================================================
// RATE LIMITING
// =============================================================================

type rateWindow struct {
	count     int
	resetTime time.Time
}

// rateLimiter is a fixed-window counter per identifier. Entries whose
// window has passed are swept opportunistically on each allow() call,
// so the map cannot grow without bound under steady traffic.
type rateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*rateWindow
	interval    time.Duration
	maxRequests int
	lastSweep   time.Time
}

func newRateLimiter(interval time.Duration, maxRequests int) *rateLimiter {
	return &rateLimiter{
		windows:     make(map[string]*rateWindow),
		interval:    interval,
		maxRequests: maxRequests,
		lastSweep:   time.Now(),
	}
}

func (rl *rateLimiter) allow(identifier string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) > 5*time.Minute {
		for key, w := range rl.windows {
			if w.resetTime.Before(now) {
				delete(rl.windows, key)
			}
		}
		rl.lastSweep = now
	}

	w, ok := rl.windows[identifier]
	if !ok || now.After(w.resetTime) {
		rl.windows[identifier] = &rateWindow{count: 1, resetTime: now.Add(rl.interval)}
		return true
	}
	if w.count < rl.maxRequests {
		w.count++
		return true
	}
	return false
}

// limit wraps a handler with the rate limiter, keyed by client IP.
func (rl *rateLimiter) limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIdentifier(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.interval.Seconds())))
			writeError(w, http.StatusTooManyRequests, "Too many requests. Try again later.", nil)
			return
		}
		next(w, r)
	}
}

// clientIdentifier resolves the caller's IP, trusting proxy headers
// when present.
func clientIdentifier(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
