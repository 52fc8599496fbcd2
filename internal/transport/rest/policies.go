package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/service/policy"
)

// policyService defines the minimal interface needed by PolicyHandler.
type policyService interface {
	Create(ctx context.Context, input policy.CreateInput) (*domain.Policy, error)
	Update(ctx context.Context, id uuid.UUID, input policy.UpdateInput) (*domain.Policy, error)
	Get(ctx context.Context, id uuid.UUID) (*policy.Details, error)
	ListActive(ctx context.Context, input policy.ListInput) ([]domain.Policy, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PolicyHandler serves policy endpoints.
type PolicyHandler struct {
	svc policyService
	log *slog.Logger
}

// NewPolicyHandler creates a PolicyHandler.
func NewPolicyHandler(svc policyService, logger *slog.Logger) *PolicyHandler {
	return &PolicyHandler{svc: svc, log: logger.With("handler", "policies")}
}

type createPolicyRequest struct {
	Policyholder domain.Policyholder `json:"policyholder"`
	Premium      domain.Money        `json:"premium"`
	Coverage     domain.Coverage     `json:"coverage"`
	StartDate    date                `json:"startDate"`
	EndDate      date                `json:"endDate"`
	FloodZone    string              `json:"floodZone"`
}

type updatePolicyRequest struct {
	Policyholder *domain.Policyholder `json:"policyholder"`
	Premium      *domain.Money        `json:"premium"`
	Coverage     *domain.Coverage     `json:"coverage"`
	StartDate    *date                `json:"startDate"`
	EndDate      *date                `json:"endDate"`
	Status       *string              `json:"status"`
	FloodZone    *string              `json:"floodZone"`
}

// Create handles POST /api/policies.
func (h *PolicyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPolicyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Create(r.Context(), policy.CreateInput{
		Policyholder: req.Policyholder,
		Premium:      req.Premium,
		Coverage:     req.Coverage,
		StartDate:    req.StartDate.Time,
		EndDate:      req.EndDate.Time,
		FloodZone:    req.FloodZone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPolicyResponse(p))
}

// Update handles PUT /api/policies/{id}. Absent fields keep their value.
func (h *PolicyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updatePolicyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := policy.UpdateInput{
		Policyholder: req.Policyholder,
		Premium:      req.Premium,
		Coverage:     req.Coverage,
		StartDate:    datePtr(req.StartDate),
		EndDate:      datePtr(req.EndDate),
		FloodZone:    req.FloodZone,
	}
	if req.Status != nil {
		status := domain.PolicyStatus(*req.Status)
		input.Status = &status
	}

	p, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPolicyResponse(p))
}

// Get handles GET /api/policies/{id}.
func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPolicyDetailsResponse(details))
}

// Delete handles DELETE /api/policies/{id}. The policy is soft-deleted.
func (h *PolicyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/policies?limit=. Only active policies are listed.
func (h *PolicyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	policies, err := h.svc.ListActive(r.Context(), policy.ListInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]policyResponse, len(policies))
	for i := range policies {
		resp[i] = toPolicyResponse(&policies[i])
	}
	writeJSON(w, http.StatusOK, resp)
}
