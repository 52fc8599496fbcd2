package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/internal/service/risk"
)

// riskService defines the minimal interface needed by RiskHandler.
type riskService interface {
	GetLatest(ctx context.Context, policyID uuid.UUID) (*domain.RiskAssessment, error)
	Upsert(ctx context.Context, policyID uuid.UUID, input risk.UpsertInput) (*domain.RiskAssessment, error)
	Analytics(ctx context.Context) ([]domain.RiskAnalytics, error)
}

// RiskHandler serves risk assessment endpoints.
type RiskHandler struct {
	svc riskService
	log *slog.Logger
}

// NewRiskHandler creates a RiskHandler.
func NewRiskHandler(svc riskService, logger *slog.Logger) *RiskHandler {
	return &RiskHandler{svc: svc, log: logger.With("handler", "risk")}
}

type upsertAssessmentRequest struct {
	RiskScore           *int                     `json:"riskScore"`
	FloodZoneCategory   string                   `json:"floodZoneCategory"`
	PredictedAnnualLoss domain.Money             `json:"predictedAnnualLoss"`
	AssessmentFactors   domain.AssessmentFactors `json:"assessmentFactors"`
}

// GetLatest handles GET /api/risk/assessment/{policyId}.
func (h *RiskHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	policyID, ok := pathUUID(w, r, "policyId")
	if !ok {
		return
	}

	a, err := h.svc.GetLatest(r.Context(), policyID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssessmentResponse(a))
}

// Upsert handles PUT /api/risk/assessment/{policyId}.
func (h *RiskHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	policyID, ok := pathUUID(w, r, "policyId")
	if !ok {
		return
	}
	var req upsertAssessmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.RiskScore == nil {
		handleError(h.log, w, r, domain.NewValidationError("riskScore", "required"))
		return
	}

	a, err := h.svc.Upsert(r.Context(), policyID, risk.UpsertInput{
		RiskScore:           *req.RiskScore,
		FloodZoneCategory:   req.FloodZoneCategory,
		PredictedAnnualLoss: req.PredictedAnnualLoss,
		Factors:             req.AssessmentFactors,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssessmentResponse(a))
}

// Analytics handles GET /api/risk/analytics.
func (h *RiskHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Analytics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]analyticsResponse, len(rows))
	for i, a := range rows {
		resp[i] = analyticsResponse{
			FloodZoneCategory: a.FloodZoneCategory,
			AverageRiskScore:  a.AverageRiskScore,
			TotalAssessments:  a.TotalAssessments,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
