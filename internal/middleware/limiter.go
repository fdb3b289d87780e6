package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	// signup / login / admin login (Strict)
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// General (Default)
	limitGeneral = rate.Limit(10)
	burstGeneral = 20

	// Admin panel, trusted after authentication
	limitAdmin = rate.Limit(20)
	burstAdmin = 40

	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type tier struct {
	name  string
	limit rate.Limit
	burst int
}

var (
	tierStrict  = tier{"strict", limitStrict, burstStrict}
	tierGeneral = tier{"general", limitGeneral, burstGeneral}
	tierAdmin   = tier{"admin", limitAdmin, burstAdmin}
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per identity and tier.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
}

func NewLimiter() *Limiter {
	return &Limiter{
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// Run evicts idle visitors until ctx is done.
func (l *Limiter) Run(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > visitorTTL {
			delete(l.visitors, key)
		}
	}
}

func (l *Limiter) get(key string, t tier) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(t.limit, t.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = l.now()
	return v.limiter
}

// Middleware answers 429 once the caller's bucket for the route tier is empty.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := resolveRateTier(r)
		key := identity(r) + ":" + t.name

		if !l.get(key, t).Allow() {
			logger.FromCtx(r.Context()).Warn("rate limited",
				zap.String("key", key),
				zap.String("path", r.URL.Path),
			)
			utils.WriteJSONError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// identity is the authenticated user, else the remote IP. The client id is
// caller-chosen and minted fresh for cookieless requests, so it never keys a
// bucket.
func identity(r *http.Request) string {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return "user:" + userID
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}

func resolveRateTier(r *http.Request) tier {
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/auth/") && r.Method == http.MethodPost:
		return tierStrict
	case strings.HasPrefix(r.URL.Path, "/api/admin/"):
		return tierAdmin
	default:
		return tierGeneral
	}
}
