package domain

import "time"

// AuditRecord tracks one audit of an account. It is created by the auditor
// and transitions Initiated -> Completed exactly once; there is no way back.
//
// BalanceSnapshot is frozen at initiation time and never follows later
// account mutations.
type AuditRecord struct {
	ID              uint64     `json:"id"`
	Ref             Commitment `json:"ref"` // opaque correlation hash for external reference
	AccountID       uint64     `json:"account_id"`
	BalanceSnapshot Commitment `json:"balance_snapshot"`
	Discrepancy     Commitment `json:"discrepancy"`
	TypeCommitment  Commitment `json:"type_commitment"`
	Completed       bool       `json:"completed"`
	InitiatedAt     time.Time  `json:"initiated_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// IsTerminal reports whether the record reached its final state.
func (r *AuditRecord) IsTerminal() bool {
	return r.Completed
}
