package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/floodinsure-backend/internal/config"
	"github.com/heartmarshall/floodinsure-backend/internal/metrics"
	"github.com/heartmarshall/floodinsure-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the router.
type Handlers struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Policies *PolicyHandler
	Claims   *ClaimHandler
	Risk     *RiskHandler
	Health   *HealthHandler
}

// RouterDeps holds the cross-cutting pieces the router wraps handlers with.
// Metrics and MetricsHandler may be nil.
type RouterDeps struct {
	Logger         *slog.Logger
	Tokens         middleware.TokenValidator
	Limiter        *middleware.RateLimiter
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	CORS           config.CORSConfig
	RateLimit      config.RateLimitConfig
	MetricsPath    string
}

// NewRouter builds the HTTP handler tree. Every route except the probes,
// the metrics endpoint and the public auth endpoints requires a bearer token.
// Role checks happen in the services.
func NewRouter(h Handlers, d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		mux.Handle(pattern, middleware.Route(middleware.Chain(mws...)(fn)))
	}
	authed := middleware.Middleware(middleware.RequireAuth)

	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)
	if d.MetricsHandler != nil {
		mux.Handle("GET "+d.MetricsPath, middleware.Route(d.MetricsHandler))
	}

	handle("POST /api/auth/register", h.Auth.Register)
	handle("POST /api/auth/login", h.Auth.Login, d.Limiter.Limit("login", d.RateLimit.AuthPerMinute))
	handle("POST /api/auth/forgot-password", h.Auth.ForgotPassword, d.Limiter.Limit("forgot-password", d.RateLimit.AuthPerMinute))
	handle("POST /api/auth/reset-password", h.Auth.ResetPassword, d.Limiter.Limit("reset-password", d.RateLimit.AuthPerMinute))
	handle("GET /api/auth/me", h.Auth.Me, authed)

	handle("GET /api/policies", h.Policies.List, authed)
	handle("POST /api/policies", h.Policies.Create, authed)
	handle("GET /api/policies/{id}", h.Policies.Get, authed)
	handle("PUT /api/policies/{id}", h.Policies.Update, authed)
	handle("DELETE /api/policies/{id}", h.Policies.Delete, authed)

	handle("GET /api/claims", h.Claims.List, authed)
	handle("POST /api/claims", h.Claims.Create, authed)
	handle("GET /api/claims/{id}", h.Claims.Get, authed)
	handle("PUT /api/claims/{id}/status", h.Claims.UpdateStatus, authed)

	handle("GET /api/risk/assessment/{policyId}", h.Risk.GetLatest, authed)
	handle("PUT /api/risk/assessment/{policyId}", h.Risk.Upsert, authed)
	handle("GET /api/risk/analytics", h.Risk.Analytics, authed)

	handle("GET /api/users", h.Users.List, authed)
	handle("GET /api/users/{id}", h.Users.Get, authed)
	handle("PUT /api/users/{id}", h.Users.Update, authed)
	handle("DELETE /api/users/{id}", h.Users.Deactivate, authed)
	handle("PATCH /api/users/{id}/role", h.Users.SetRole, authed)
	handle("PATCH /api/users/bulk/status", h.Users.BulkStatus, authed)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
	)(mux)
}
