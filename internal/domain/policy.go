package domain

import (
	"time"

	"github.com/google/uuid"
)

// PolicyholderSchemaVersion is the current layout of Policyholder and
// Coverage documents. Stored documents carry the version they were written
// with; unknown fields are preserved in Extra.
const PolicyholderSchemaVersion = 1

// Policy is an issued flood-insurance contract.
type Policy struct {
	ID           uuid.UUID
	PolicyNumber string
	Policyholder Policyholder
	Premium      Money
	Coverage     Coverage
	StartDate    time.Time
	EndDate      time.Time
	Status       PolicyStatus
	RiskLevel    RiskLevel
	FloodZone    string
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// IsActive reports whether claims may be filed against the policy.
func (p *Policy) IsActive() bool {
	return p.Status == PolicyStatusActive && p.DeletedAt == nil
}

// Policyholder holds the insured party and property attributes.
type Policyholder struct {
	Version          int               `json:"version"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            *string           `json:"phone,omitempty"`
	Address          *Address          `json:"address,omitempty"`
	PropertyType     *string           `json:"propertyType,omitempty"`
	ConstructionYear *int              `json:"constructionYear,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}

// Address is a postal address of the insured property.
type Address struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
}

// Coverage holds the limits of a policy.
type Coverage struct {
	Version       int               `json:"version"`
	BuildingLimit Money             `json:"buildingLimit"`
	ContentsLimit Money             `json:"contentsLimit"`
	Deductible    Money             `json:"deductible"`
	Extra         map[string]string `json:"extra,omitempty"`
}

// PolicyPatch carries the editable fields of a policy update. Risk level and
// policy number are derived and have no patch field.
type PolicyPatch struct {
	Policyholder *Policyholder
	Premium      *Money
	Coverage     *Coverage
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *PolicyStatus
	FloodZone    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p PolicyPatch) IsEmpty() bool {
	return p.Policyholder == nil && p.Premium == nil && p.Coverage == nil &&
		p.StartDate == nil && p.EndDate == nil && p.Status == nil && p.FloodZone == nil
}

// Apply merges the patch into a copy of p.
func (p PolicyPatch) Apply(policy Policy) Policy {
	if p.Policyholder != nil {
		policy.Policyholder = *p.Policyholder
	}
	if p.Premium != nil {
		policy.Premium = *p.Premium
	}
	if p.Coverage != nil {
		policy.Coverage = *p.Coverage
	}
	if p.StartDate != nil {
		policy.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		policy.EndDate = *p.EndDate
	}
	if p.Status != nil {
		policy.Status = *p.Status
	}
	if p.FloodZone != nil {
		policy.FloodZone = *p.FloodZone
	}
	return policy
}

var (
	highRiskZones   = map[string]struct{}{"A": {}, "V": {}, "AE": {}, "VE": {}}
	mediumRiskZones = map[string]struct{}{"B": {}, "X500": {}}
)

// ClassifyFloodZone maps a FEMA flood zone code to the initial risk level of
// a new policy. Codes are matched exactly.
func ClassifyFloodZone(zone string) RiskLevel {
	if _, ok := highRiskZones[zone]; ok {
		return RiskLevelHigh
	}
	if _, ok := mediumRiskZones[zone]; ok {
		return RiskLevelMedium
	}
	return RiskLevelLow
}

// PolicyFilter narrows a policy listing.
type PolicyFilter struct {
	Status    *PolicyStatus
	EndBefore *time.Time
	EndAfter  *time.Time
	// After resumes a newest-first listing strictly past this cursor.
	After     *PolicyCursor
	Limit     int
}

// PolicyCursor is a keyset position in a newest-first policy listing.
type PolicyCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// CursorOf returns the position of p in a newest-first listing.
func CursorOf(p Policy) *PolicyCursor {
	return &PolicyCursor{CreatedAt: p.CreatedAt, ID: p.ID}
}
