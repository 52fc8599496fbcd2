package policy

import "github.com/heartmarshall/floodinsure-backend/internal/domain"

// Details is a policy with its assessment history, latest first.
type Details struct {
	Policy      *domain.Policy
	Assessments []domain.RiskAssessment
}

// ExpiryResult summarizes one run of the expiry job.
type ExpiryResult struct {
	Expired        int
	NoticesQueued  int
	NoticesSkipped int
}
