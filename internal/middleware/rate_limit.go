package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/ldbiro/ldbiro-web/pkg/metrics"
)

// Rate-limit rejection messages. The contact form message promises a
// one-minute wait because that is its window length.
const (
	MsgContactRateLimited = "Previše zahteva. Molimo sačekajte minut pre slanja nove poruke."
	MsgGeneralRateLimited = "Previše zahteva. Molimo pokušajte ponovo kasnije."
)

// Store is the check-and-increment abstraction behind rate limiting.
// Injectable so tests can substitute deterministic implementations and a
// multi-instance deployment can swap in a shared external store.
type Store interface {
	// Allow records one request for key and reports whether it is within
	// the configured ceiling.
	Allow(key string) bool
}

// FixedWindowStore counts requests per client key in fixed windows. Backed
// by an expiring cache whose janitor evicts stale client records, so the
// store stays bounded across long-running processes. Check-and-increment
// is serialized by a store-level mutex so concurrent requests from one
// client cannot slip past the ceiling.
type FixedWindowStore struct {
	mu    sync.Mutex
	limit int
	cache *gocache.Cache
}

// NewFixedWindowStore creates a store allowing limit requests per window
// per client key.
func NewFixedWindowStore(limit int, window time.Duration) *FixedWindowStore {
	return &FixedWindowStore{
		limit: limit,
		cache: gocache.New(window, window),
	}
}

// Allow implements Store.
func (s *FixedWindowStore) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Add only succeeds when no live record exists, which starts a fresh
	// window with this request counted.
	if err := s.cache.Add(key, 1, gocache.DefaultExpiration); err == nil {
		return s.limit >= 1
	}

	count, err := s.cache.IncrementInt(key, 1)
	if err != nil {
		// The record expired between Add and Increment; start a new window.
		s.cache.Set(key, 1, gocache.DefaultExpiration)
		return s.limit >= 1
	}
	return count <= s.limit
}

// ClientKey derives the rate-limit identity for a request. Forwarded
// headers are spoofable, so they are only consulted when the deployment
// declares a trusted proxy in front; otherwise the connection's remote
// address is used.
func ClientKey(c *gin.Context, trustProxyHeaders bool) string {
	if trustProxyHeaders {
		if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
			if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
				return first
			}
		}
		if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
			return realIP
		}
		return "unknown"
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if c.Request.RemoteAddr != "" {
		return c.Request.RemoteAddr
	}
	return "unknown"
}

// RateLimit rejects requests over the store's ceiling with 429 before any
// further work happens on the request.
func RateLimit(name string, store Store, trustProxyHeaders bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ClientKey(c, trustProxyHeaders)
		if !store.Allow(key) {
			metrics.RateLimitRejections.WithLabelValues(name).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}
		c.Next()
	}
}

// VisitorLimiter implements a token-bucket limiter per client key for the
// general page and utility routes, where bursty but sustained-bounded
// traffic is acceptable.
type VisitorLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
	stop     chan struct{}
}

// NewVisitorLimiter creates a limiter allowing r requests per second with
// bursts of up to b per client key.
func NewVisitorLimiter(r rate.Limit, b int) *VisitorLimiter {
	vl := &VisitorLimiter{
		visitors: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
		stop:     make(chan struct{}),
	}
	go vl.cleanupVisitors()
	return vl
}

// Stop terminates the background eviction goroutine.
func (vl *VisitorLimiter) Stop() {
	close(vl.stop)
}

func (vl *VisitorLimiter) getVisitor(key string) *rate.Limiter {
	vl.mu.Lock()
	defer vl.mu.Unlock()

	limiter, exists := vl.visitors[key]
	if !exists {
		limiter = rate.NewLimiter(vl.r, vl.b)
		vl.visitors[key] = limiter
	}
	return limiter
}

// cleanupVisitors evicts keys whose buckets have fully refilled, meaning
// the client has been idle long enough to forget.
func (vl *VisitorLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-vl.stop:
			return
		case <-ticker.C:
			vl.mu.Lock()
			for key, limiter := range vl.visitors {
				if limiter.Tokens() >= float64(vl.b) {
					delete(vl.visitors, key)
				}
			}
			vl.mu.Unlock()
		}
	}
}

// Middleware returns a Gin middleware enforcing the token-bucket limit.
func (vl *VisitorLimiter) Middleware(trustProxyHeaders bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ClientKey(c, trustProxyHeaders)
		if !vl.getVisitor(key).Allow() {
			metrics.RateLimitRejections.WithLabelValues("general").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": MsgGeneralRateLimited})
			return
		}
		c.Next()
	}
}
