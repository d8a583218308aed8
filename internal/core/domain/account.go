package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoAccount is the reserved "no account" sentinel; valid ids start at 1.
const NoAccount uint64 = 0

// Account is a ledger account whose balance is kept only as a commitment.
// Owner and TypeCommitment are immutable after creation.
type Account struct {
	ID                    uint64     `json:"id"`
	Owner                 uuid.UUID  `json:"owner"`
	BalanceCommitment     Commitment `json:"balance_commitment"`
	TransactionCommitment Commitment `json:"transaction_commitment"`
	UpdateCount           uint64     `json:"update_count"`
	Active                bool       `json:"active"`
	TypeCommitment        Commitment `json:"type_commitment"`
	CreatedAt             time.Time  `json:"created_at"`
	LastUpdated           time.Time  `json:"last_updated"`
}

// IsOwnedBy reports whether the given principal controls this account.
func (a *Account) IsOwnedBy(principal uuid.UUID) bool {
	return a.Owner == principal
}
