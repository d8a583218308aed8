package service

import (
	"context"

	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// Broadcaster fans one emitted event out to every configured sink, in sink
// registration order. It runs on the ledger's write path, so individual sinks
// are expected to be fast or buffer internally.
type Broadcaster struct {
	sinks []ports.EventSink
}

// NewBroadcaster creates a broadcaster over the given sinks. Nil sinks are
// skipped so callers can wire optional sinks unconditionally.
func NewBroadcaster(sinks ...ports.EventSink) *Broadcaster {
	out := make([]ports.EventSink, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			out = append(out, sink)
		}
	}
	return &Broadcaster{sinks: out}
}

// Emit delivers the event to every sink.
func (b *Broadcaster) Emit(ctx context.Context, event *domain.Event) {
	for _, sink := range b.sinks {
		sink.Emit(ctx, event)
	}
}

// LogSink writes every state transition to the structured log.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink creates a logging event sink.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Emit logs the event.
func (s *LogSink) Emit(ctx context.Context, event *domain.Event) {
	s.log.Info().
		Uint64("seq", event.Seq).
		Str("type", string(event.Type)).
		Uint64("account_id", event.AccountID).
		Uint64("audit_id", event.AuditID).
		Msg("ledger event")
}

// JournalSink buffers events and appends them to the durable journal from a
// background worker, keeping slow storage off the ledger's write path.
// Events are delivered in emit order; if the buffer fills, the event is
// dropped with a warning — the journal is a replica of the stream, never the
// source of truth.
type JournalSink struct {
	journal ports.EventJournal
	inbox   chan *domain.Event
	log     zerolog.Logger
}

// NewJournalSink creates a journal sink with the given buffer size.
func NewJournalSink(journal ports.EventJournal, buffer int, log zerolog.Logger) *JournalSink {
	if buffer <= 0 {
		buffer = 256
	}
	return &JournalSink{
		journal: journal,
		inbox:   make(chan *domain.Event, buffer),
		log:     log,
	}
}

// Emit enqueues the event for the background writer.
func (s *JournalSink) Emit(ctx context.Context, event *domain.Event) {
	select {
	case s.inbox <- event:
	default:
		s.log.Warn().
			Uint64("seq", event.Seq).
			Str("type", string(event.Type)).
			Msg("journal buffer full, dropping event")
	}
}

// Run consumes the inbox until ctx is cancelled. Append failures are logged
// and skipped; the stream itself already committed.
func (s *JournalSink) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-s.inbox:
			if err := s.journal.Append(context.Background(), event); err != nil {
				s.log.Warn().Err(err).
					Uint64("seq", event.Seq).
					Msg("failed to persist ledger event")
			}
		}
	}
}
