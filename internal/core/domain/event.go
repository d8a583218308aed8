package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the kind of ledger state transition.
type EventType string

const (
	EventAccountCreated       EventType = "ACCOUNT_CREATED"
	EventBalanceUpdated       EventType = "BALANCE_UPDATED"
	EventAccountStatusChanged EventType = "ACCOUNT_STATUS_CHANGED"
	EventAuditInitiated       EventType = "AUDIT_INITIATED"
	EventAuditCompleted       EventType = "AUDIT_COMPLETED"
	EventAuditorTransferred   EventType = "AUDITOR_TRANSFERRED"
)

// Event is one entry of the ordered, append-only ledger event stream consumed
// by external indexers and UIs. Seq is assigned by the ledger inside the
// serialized write path, so consumers can rely on it for total ordering.
type Event struct {
	Seq            uint64      `json:"seq"`
	Type           EventType   `json:"type"`
	AccountID      uint64      `json:"account_id,omitempty"`
	AuditID        uint64      `json:"audit_id,omitempty"`
	Owner          *uuid.UUID  `json:"owner,omitempty"`
	Active         *bool       `json:"active,omitempty"`
	TypeCommitment *Commitment `json:"type_commitment,omitempty"`
	PrevAuditor    *uuid.UUID  `json:"previous_auditor,omitempty"`
	NewAuditor     *uuid.UUID  `json:"new_auditor,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
}
