package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/service/claim"
)

// claimService defines the minimal interface needed by ClaimHandler.
type claimService interface {
	Create(ctx context.Context, input claim.CreateInput) (*domain.Claim, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input claim.StatusInput) (*domain.Claim, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	List(ctx context.Context, input claim.ListInput) ([]domain.Claim, error)
}

// ClaimHandler serves claim endpoints.
type ClaimHandler struct {
	svc claimService
	log *slog.Logger
}

// NewClaimHandler creates a ClaimHandler.
func NewClaimHandler(svc claimService, logger *slog.Logger) *ClaimHandler {
	return &ClaimHandler{svc: svc, log: logger.With("handler", "claims")}
}

type createClaimRequest struct {
	PolicyID            uuid.UUID    `json:"policyId"`
	ClaimAmount         domain.Money `json:"claimAmount"`
	IncidentDescription string       `json:"incidentDescription"`
	IncidentDate        date         `json:"incidentDate"`
	Photos              []string     `json:"photos"`
	Documents           []string     `json:"documents"`
}

type claimStatusRequest struct {
	Status         string        `json:"status"`
	AdjustorNotes  *string       `json:"adjustorNotes"`
	ApprovedAmount *domain.Money `json:"approvedAmount"`
}

// Create handles POST /api/claims.
func (h *ClaimHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createClaimRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), claim.CreateInput{
		PolicyID:            req.PolicyID,
		ClaimAmount:         req.ClaimAmount,
		IncidentDescription: req.IncidentDescription,
		IncidentDate:        req.IncidentDate.Time,
		Photos:              req.Photos,
		Documents:           req.Documents,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toClaimResponse(c))
}

// UpdateStatus handles PUT /api/claims/{id}/status.
func (h *ClaimHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req claimStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateStatus(r.Context(), id, claim.StatusInput{
		Status:         domain.ClaimStatus(req.Status),
		AdjustorNotes:  req.AdjustorNotes,
		ApprovedAmount: req.ApprovedAmount,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toClaimResponse(c))
}

// Get handles GET /api/claims/{id}.
func (h *ClaimHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toClaimResponse(c))
}

// List handles GET /api/claims?policyId=&status=.
func (h *ClaimHandler) List(w http.ResponseWriter, r *http.Request) {
	var input claim.ListInput
	if v := queryString(r, "policyId"); v != nil {
		id, err := uuid.Parse(*v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid policyId")
			return
		}
		input.PolicyID = &id
	}
	if v := queryString(r, "status"); v != nil {
		status := domain.ClaimStatus(*v)
		input.Status = &status
	}

	claims, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]claimResponse, len(claims))
	for i := range claims {
		resp[i] = toClaimResponse(&claims[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

