package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleAdmin        UserRole = "admin"
	UserRoleAgent        UserRole = "agent"
	UserRolePolicyholder UserRole = "policyholder"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleAgent, UserRolePolicyholder:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// UserStatus marks whether a user may sign in. Users are never hard-deleted;
// deactivation is the only removal.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive:
		return true
	}
	return false
}

// PolicyStatus is the lifecycle state of an insurance policy.
type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusExpired   PolicyStatus = "expired"
	PolicyStatusCancelled PolicyStatus = "cancelled"
)

func (s PolicyStatus) String() string { return string(s) }

func (s PolicyStatus) IsValid() bool {
	switch s {
	case PolicyStatusActive, PolicyStatusExpired, PolicyStatusCancelled:
		return true
	}
	return false
}

// RiskLevel is the coarse risk classification stored on a policy.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

func (l RiskLevel) String() string { return string(l) }

func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// ClaimStatus is the lifecycle state of a claim.
type ClaimStatus string

const (
	ClaimStatusSubmitted   ClaimStatus = "submitted"
	ClaimStatusUnderReview ClaimStatus = "under_review"
	ClaimStatusApproved    ClaimStatus = "approved"
	ClaimStatusRejected    ClaimStatus = "rejected"
)

func (s ClaimStatus) String() string { return string(s) }

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusSubmitted, ClaimStatusUnderReview, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusApproved || s == ClaimStatusRejected
}

// claimTransitions lists the permitted moves out of each non-terminal state.
var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusSubmitted:   {ClaimStatusUnderReview, ClaimStatusApproved, ClaimStatusRejected},
	ClaimStatusUnderReview: {ClaimStatusApproved, ClaimStatusRejected},
}

// CanTransitionTo reports whether a claim in state s may move to next.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	for _, allowed := range claimTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NotificationEvent tags a notification template.
type NotificationEvent string

const (
	EventClaimSubmitted     NotificationEvent = "CLAIM_SUBMITTED"
	EventClaimStatusUpdated NotificationEvent = "CLAIM_STATUS_UPDATED"
	EventPolicyExpiring     NotificationEvent = "POLICY_EXPIRING"
	EventPasswordReset      NotificationEvent = "PASSWORD_RESET"
)

func (e NotificationEvent) String() string { return string(e) }

// NotificationStatus is the delivery state of an outbox record.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

func (s NotificationStatus) String() string { return string(s) }
