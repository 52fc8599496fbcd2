package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/floodinsure-backend/internal/metrics"
)

// idleBucketTTL is how long an unused bucket is kept.
const idleBucketTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per limit name and client IP, so login
// and forgot-password are budgeted apart. Rejections are counted in metrics.
type RateLimiter struct {
	buckets  sync.Map // map[bucketKey]*bucket
	metrics  *metrics.Metrics
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type bucketKey struct {
	limit string
	ip    string
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	last     time.Time
}

// NewRateLimiter creates a rate limiter and starts its idle-bucket sweep.
// m may be nil. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration, m *metrics.Metrics) *RateLimiter {
	return newRateLimiter(cleanupInterval, m, time.Now)
}

func newRateLimiter(cleanupInterval time.Duration, m *metrics.Metrics, now func() time.Time) *RateLimiter {
	rl := &RateLimiter{metrics: m, now: now, stop: make(chan struct{})}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop ends the sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client IP under name, refilled
// continuously. perMinute <= 0 disables the limit.
func (rl *RateLimiter) Limit(name string, perMinute int) Middleware {
	if rl == nil || perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	retryAfter := strconv.Itoa(int(math.Ceil(60 / float64(perMinute))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := bucketKey{limit: name, ip: clientIP(r)}
			if !rl.bucket(key, perMinute).take(rl.now()) {
				rl.metrics.IncRateLimited(name)
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucket(key bucketKey, perMinute int) *bucket {
	if b, ok := rl.buckets.Load(key); ok {
		return b.(*bucket)
	}
	capacity := float64(perMinute)
	b, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:   capacity,
		capacity: capacity,
		perSec:   capacity / 60,
		last:     rl.now(),
	})
	return b.(*bucket)
}

// take refills for the time since the last call and spends one token.
func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = math.Min(b.capacity, b.tokens+elapsed*b.perSec)
	}
	b.last = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.last)
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := rl.now()
			rl.buckets.Range(func(key, value any) bool {
				if value.(*bucket).idleSince(now) > idleBucketTTL {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}

// clientIP strips the port from RemoteAddr so that one host shares a bucket
// across connections.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
