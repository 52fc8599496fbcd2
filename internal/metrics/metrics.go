// Package metrics holds the Prometheus collectors of the service. All
// methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "floodinsure"

// Notification delivery results.
const (
	ResultSent    = "sent"
	ResultRetry   = "retry"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Metrics provides observability for the HTTP surface and the domain.
type Metrics struct {
	// HTTP requests by method, route pattern and status code
	HTTPRequests *prometheus.CounterVec

	// HTTP latency by method and route pattern
	HTTPDuration *prometheus.HistogramVec

	// Notification delivery attempts by event and result
	Notifications *prometheus.CounterVec

	// Claims by the status they were moved to (submitted on create)
	Claims *prometheus.CounterVec

	// Requests rejected by a named rate limit
	RateLimited *prometheus.CounterVec

	PoliciesCreated prometheus.Counter
	PoliciesExpired prometheus.Counter
	Assessments     prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by method and route",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),

		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification delivery attempts by event and result",
		}, []string{"event", "result"}),

		Claims: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_total",
			Help:      "Claims submitted or moved to a status",
		}, []string{"status"}),

		RateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by rate limit name",
		}, []string{"limit"}),

		PoliciesCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policies_created_total",
			Help:      "Total policies created",
		}),

		PoliciesExpired: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policies_expired_total",
			Help:      "Total policies moved to expired by the expiry job",
		}),

		Assessments: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_assessments_written_total",
			Help:      "Total risk assessment writes",
		}),
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// IncNotification records a delivery attempt result.
func (m *Metrics) IncNotification(event, result string) {
	if m != nil {
		m.Notifications.WithLabelValues(event, result).Inc()
	}
}

// IncClaim records a claim entering status.
func (m *Metrics) IncClaim(status string) {
	if m != nil {
		m.Claims.WithLabelValues(status).Inc()
	}
}

// IncRateLimited records a request rejected by limit.
func (m *Metrics) IncRateLimited(limit string) {
	if m != nil {
		m.RateLimited.WithLabelValues(limit).Inc()
	}
}

// IncPoliciesCreated records a new policy.
func (m *Metrics) IncPoliciesCreated() {
	if m != nil {
		m.PoliciesCreated.Inc()
	}
}

// AddPoliciesExpired records policies expired by one job run.
func (m *Metrics) AddPoliciesExpired(n int) {
	if m != nil && n > 0 {
		m.PoliciesExpired.Add(float64(n))
	}
}

// IncAssessments records a risk assessment write.
func (m *Metrics) IncAssessments() {
	if m != nil {
		m.Assessments.Inc()
	}
}
