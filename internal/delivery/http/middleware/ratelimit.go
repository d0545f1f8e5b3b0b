package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	h "eventdesk/internal/delivery/http/helpers"
)

// ipLimiter tracks a token bucket per client IP and evicts idle entries.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipEntry
	r        rate.Limit
	burst    int
	stop     chan struct{}
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	ipEntryTTL    = 10 * time.Minute
	evictInterval = time.Minute
)

func newIPLimiter(r rate.Limit, burst int) *ipLimiter {
	l := &ipLimiter{
		limiters: make(map[string]*ipEntry),
		r:        r,
		burst:    burst,
		stop:     make(chan struct{}),
	}
	go l.evictLoop()
	return l
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipEntry{limiter: rate.NewLimiter(l.r, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (l *ipLimiter) evictLoop() {
	ticker := time.NewTicker(evictInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictStale(time.Now())
		case <-l.stop:
			return
		}
	}
}

func (l *ipLimiter) evictStale(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > ipEntryTTL {
			delete(l.limiters, ip)
		}
	}
}

// close stops the eviction goroutine.
func (l *ipLimiter) close() {
	close(l.stop)
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// RateLimit returns a wrapper that limits requests per client IP using a
// token bucket of r events per second with the given burst. Over-limit
// requests get 429. The limiter lives for the life of the process.
func RateLimit(r rate.Limit, burst int) func(http.HandlerFunc) http.HandlerFunc {
	limiter := newIPLimiter(r, burst)
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			if !limiter.get(clientIP(req)).Allow() {
				h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests, "too many requests")
				return
			}
			next(w, req)
		}
	}
}
