package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an outbox record: an event waiting to be rendered and
// delivered. It is written in the same transaction as the change that
// produced it.
type Notification struct {
	ID            uuid.UUID
	Event         NotificationEvent
	Recipient     string
	Payload       NotificationPayload
	Status        NotificationStatus
	Attempts      int
	MaxAttempts   int
	NextAttemptAt time.Time
	LastError     *string
	CreatedAt     time.Time
	SentAt        *time.Time
}

// NotificationPayload is the template data of a notification. Each template
// reads the fields documented for its event.
type NotificationPayload struct {
	// CLAIM_SUBMITTED, CLAIM_STATUS_UPDATED
	ClaimNumber    string  `json:"claimNumber,omitempty"`
	ClaimAmount    *Money  `json:"claimAmount,omitempty"`
	ClaimStatus    string  `json:"claimStatus,omitempty"`
	AdjustorNotes  *string `json:"adjustorNotes,omitempty"`
	ApprovedAmount *Money  `json:"approvedAmount,omitempty"`

	// POLICY_EXPIRING
	PolicyNumber string     `json:"policyNumber,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`

	// PASSWORD_RESET
	ResetToken string `json:"resetToken,omitempty"`
	ExpiresIn  string `json:"expiresIn,omitempty"`
}

// Message is a rendered notification ready for a transport.
type Message struct {
	Recipient string
	Subject   string
	Body      string
}
