package domain

import (
	"time"

	"github.com/google/uuid"
)

// Principal is an authenticated identity that may own accounts or hold the
// auditor role. The ledger core only ever sees the ID.
type Principal struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose
	CreatedAt    time.Time `json:"created_at"`
}
