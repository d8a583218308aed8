package redis

import (
	"context"
	"encoding/json"

	"confidential-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// EventChannel is the pub/sub channel indexers and UIs subscribe to.
const EventChannel = "ledger.events"

// EventPublisher implements ports.EventSink by publishing every state
// transition on a Redis pub/sub channel. Delivery is best-effort; durable
// consumers read the journal instead.
type EventPublisher struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewEventPublisher creates a Redis-backed event publisher.
func NewEventPublisher(client *goredis.Client, log zerolog.Logger) *EventPublisher {
	return &EventPublisher{client: client, log: log}
}

// Emit publishes the event as JSON.
func (p *EventPublisher) Emit(ctx context.Context, event *domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Uint64("seq", event.Seq).Msg("failed to marshal ledger event")
		return
	}
	if err := p.client.Publish(ctx, EventChannel, payload).Err(); err != nil {
		p.log.Warn().Err(err).Uint64("seq", event.Seq).Msg("failed to publish ledger event")
	}
}
