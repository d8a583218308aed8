package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"confidential-ledger/internal/core/domain"
)

// EventJournal implements ports.EventJournal. Events are stored with their
// ledger-assigned sequence number plus the full JSON payload, so indexers can
// page through the stream in commit order.
type EventJournal struct {
	pool Pool
}

// NewEventJournal creates a new EventJournal.
func NewEventJournal(pool Pool) *EventJournal {
	return &EventJournal{pool: pool}
}

// Append writes one event to the journal.
func (j *EventJournal) Append(ctx context.Context, event *domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	query := `INSERT INTO ledger_events (seq, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err = j.pool.Exec(ctx, query, event.Seq, string(event.Type), payload, event.Timestamp)
	if err != nil {
		return fmt.Errorf("insert ledger event: %w", err)
	}
	return nil
}

// ListAfter returns up to limit events with sequence numbers greater than
// afterSeq, in sequence order.
func (j *EventJournal) ListAfter(ctx context.Context, afterSeq uint64, limit int) ([]domain.Event, error) {
	query := `SELECT payload FROM ledger_events WHERE seq > $1 ORDER BY seq ASC LIMIT $2`

	rows, err := j.pool.Query(ctx, query, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		var event domain.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("unmarshal ledger event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return events, nil
}
