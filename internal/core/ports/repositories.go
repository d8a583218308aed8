package ports

import (
	"context"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// PrincipalRepository defines persistence operations for principals.
type PrincipalRepository interface {
	Create(ctx context.Context, principal *domain.Principal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Principal, error)
	GetByUsername(ctx context.Context, username string) (*domain.Principal, error)
}

// EventJournal is the durable append-only copy of the ledger event stream,
// read by external indexers.
type EventJournal interface {
	Append(ctx context.Context, event *domain.Event) error
	ListAfter(ctx context.Context, afterSeq uint64, limit int) ([]domain.Event, error)
}
