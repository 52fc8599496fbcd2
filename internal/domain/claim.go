package domain

import (
	"time"

	"github.com/google/uuid"
)

// Claim is a policyholder's request for payout under a policy.
type Claim struct {
	ID                  uuid.UUID
	PolicyID            uuid.UUID
	ClaimNumber         string
	ClaimAmount         Money
	IncidentDescription string
	IncidentDate        time.Time
	ClaimDate           time.Time
	Status              ClaimStatus
	Photos              []string
	Documents           []string
	AdjustorNotes       *string
	ApprovedAmount      *Money
	SubmittedBy         uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}

// ClaimFilter narrows a claim listing. Nil fields do not filter.
type ClaimFilter struct {
	PolicyID    *uuid.UUID
	Status      *ClaimStatus
	SubmittedBy *uuid.UUID
}
