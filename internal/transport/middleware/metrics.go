package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/floodinsure-backend/internal/metrics"
)

// Metrics records request count and latency per method, route and status.
// Requests that matched no route share the "unmatched" label.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			r, info := withRequestInfo(r)

			next.ServeHTTP(sw, r)

			m.ObserveHTTP(r.Method, info.routeOrDefault(), sw.status, time.Since(start))
		})
	}
}
