package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const checkTimeout = 3 * time.Second

// Check probes one dependency. A nil error means the dependency is usable.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// PingCheck adapts anything with a Ping method, such as a pgx pool.
func PingCheck(name string, p interface{ Ping(ctx context.Context) error }) Check {
	return Check{Name: name, Probe: p.Ping}
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler running checks on /ready and /health.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the status of one checked dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready is the readiness probe: 200 if every check passes, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.run(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health reports every check with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.run(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

// run probes every check concurrently under one shared deadline.
func (h *HealthHandler) run(ctx context.Context) (map[string]ComponentStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	results := make([]ComponentStatus, len(h.checks))
	var wg sync.WaitGroup
	for i, c := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			if err := c.Probe(ctx); err != nil {
				results[i] = ComponentStatus{Status: "down", Error: err.Error()}
				return
			}
			results[i] = ComponentStatus{Status: "ok", Latency: time.Since(start).String()}
		}()
	}
	wg.Wait()

	components := make(map[string]ComponentStatus, len(h.checks))
	healthy := true
	for i, c := range h.checks {
		components[c.Name] = results[i]
		healthy = healthy && results[i].Status == "ok"
	}
	return components, healthy
}
