package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// webhookRetryIntervals are the delays between delivery attempts.
var webhookRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	5 * time.Minute,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookSink pushes every ledger event to a configured indexer URL, signed
// with HMAC-SHA256 so the indexer can verify origin. Delivery is
// fire-and-forget with bounded retries; the event stream is already
// committed before the sink sees it.
type WebhookSink struct {
	url        string
	secret     string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewWebhookSink creates a webhook sink targeting the given indexer URL.
func NewWebhookSink(url, secret string, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *WebhookSink {
	return &WebhookSink{
		url:        url,
		secret:     secret,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		log:        log,
	}
}

// Emit delivers the event asynchronously.
func (s *WebhookSink) Emit(ctx context.Context, event *domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Uint64("seq", event.Seq).Msg("webhook: failed to marshal event")
		return
	}

	go s.deliverWithRetries(event.Seq, payload)
}

func (s *WebhookSink) deliverWithRetries(seq uint64, payload []byte) {
	signature := s.sigSvc.Sign(s.secret, string(payload))

	for attempt := 0; ; attempt++ {
		if err := s.deliver(payload, signature); err == nil {
			s.log.Debug().Uint64("seq", seq).Int("attempt", attempt+1).Msg("webhook delivered")
			return
		} else if attempt >= len(webhookRetryIntervals) {
			s.log.Warn().Err(err).Uint64("seq", seq).Msg("webhook delivery failed, giving up")
			return
		} else {
			s.log.Debug().Err(err).Uint64("seq", seq).Int("attempt", attempt+1).Msg("webhook delivery failed, retrying")
			time.Sleep(webhookRetryIntervals[attempt])
		}
	}
}

func (s *WebhookSink) deliver(payload []byte, signature string) error {
	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Ledger-Signature", signature)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &webhookStatusError{status: resp.StatusCode}
	}
	return nil
}

type webhookStatusError struct {
	status int
}

func (e *webhookStatusError) Error() string {
	return fmt.Sprintf("unexpected webhook status %d", e.status)
}
