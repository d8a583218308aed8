package integration

import (
	"context"
	"sync"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// In-memory implementations of the persistence ports, so integration tests
// exercise the real HTTP layer, middleware, services, and Redis stores
// without a PostgreSQL instance.

type inMemoryPrincipalRepo struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*domain.Principal
	byUsername map[string]*domain.Principal
}

func newInMemoryPrincipalRepo() *inMemoryPrincipalRepo {
	return &inMemoryPrincipalRepo{
		byID:       make(map[uuid.UUID]*domain.Principal),
		byUsername: make(map[string]*domain.Principal),
	}
}

func (r *inMemoryPrincipalRepo) Create(_ context.Context, p *domain.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.byID[p.ID] = &cp
	r.byUsername[p.Username] = &cp
	return nil
}

func (r *inMemoryPrincipalRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPrincipalRepo) GetByUsername(_ context.Context, username string) (*domain.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type inMemoryEventJournal struct {
	mu     sync.RWMutex
	events []domain.Event
}

func newInMemoryEventJournal() *inMemoryEventJournal {
	return &inMemoryEventJournal{}
}

func (j *inMemoryEventJournal) Append(_ context.Context, event *domain.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, *event)
	return nil
}

func (j *inMemoryEventJournal) ListAfter(_ context.Context, afterSeq uint64, limit int) ([]domain.Event, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var out []domain.Event
	for _, event := range j.events {
		if event.Seq > afterSeq {
			out = append(out, event)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (j *inMemoryEventJournal) size() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.events)
}
