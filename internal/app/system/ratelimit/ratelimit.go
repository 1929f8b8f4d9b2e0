// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limiter counts requests per key in fixed windows. It is safe for
// concurrent use. Call Stop to end its cleanup goroutine.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int           // max requests per window
	duration time.Duration // window duration
	cleanup  time.Duration // how often to clean old entries
	now      func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a limiter allowing limit requests per duration per key.
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		cleanup:  duration * 2,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow records a request for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, exists := l.windows[key]
	if !exists || now.After(w.expiresAt) {
		l.windows[key] = &window{count: 1, expiresAt: now.Add(l.duration)}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// Remaining returns how many requests are left for key in its window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, exists := l.windows[key]
	if !exists || l.now().After(w.expiresAt) {
		return l.limit
	}
	return max(l.limit-w.count, 0)
}

// Reset clears the window for key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// Stop ends the cleanup goroutine and waits for it. Safe to call twice.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
	<-l.done
}

func (l *Limiter) cleanupLoop() {
	defer close(l.done)
	ticker := time.NewTicker(l.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key, w := range l.windows {
				if now.After(w.expiresAt) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// ClientIP returns the host part of r.RemoteAddr. With trustProxy set it
// prefers X-Forwarded-For, then X-Real-IP; those headers are client
// controlled unless a proxy in front overwrites them.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// SubmitLimiter throttles form submissions per client IP.
type SubmitLimiter struct {
	ip         *Limiter
	trustProxy bool
}

// NewSubmitLimiter allows limit submissions per window per IP. trustProxy
// is passed to ClientIP.
func NewSubmitLimiter(limit int, window time.Duration, trustProxy bool) *SubmitLimiter {
	return &SubmitLimiter{ip: New(limit, window), trustProxy: trustProxy}
}

// ClientIP is the key r is counted under.
func (s *SubmitLimiter) ClientIP(r *http.Request) string {
	return ClientIP(r, s.trustProxy)
}

// Allow reports whether r's client may submit now.
func (s *SubmitLimiter) Allow(r *http.Request) bool {
	return s.ip.Allow(s.ClientIP(r))
}

// Stop releases the limiter's goroutine.
func (s *SubmitLimiter) Stop() { s.ip.Stop() }
