package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"confidential-ledger/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHTTPClient struct {
	status   int
	requests chan *http.Request
	bodies   chan []byte
}

func newFakeHTTPClient(status int) *fakeHTTPClient {
	return &fakeHTTPClient{
		status:   status,
		requests: make(chan *http.Request, 4),
		bodies:   make(chan []byte, 4),
	}
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	body, _ := io.ReadAll(req.Body)
	f.requests <- req
	f.bodies <- body
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func TestWebhookSink_DeliversSignedEvent(t *testing.T) {
	client := newFakeHTTPClient(http.StatusOK)
	sigSvc := NewHMACSignatureService()
	sink := NewWebhookSink("http://indexer.local/events", "hook-secret", sigSvc, client, zerolog.Nop())

	event := &domain.Event{Seq: 7, Type: domain.EventAuditCompleted, AccountID: 3, AuditID: 2}
	sink.Emit(context.Background(), event)

	var req *http.Request
	var body []byte
	select {
	case req = <-client.requests:
		body = <-client.bodies
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "http://indexer.local/events", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	// Signature covers the exact payload bytes.
	signature := req.Header.Get("X-Ledger-Signature")
	assert.True(t, sigSvc.Verify("hook-secret", string(body), signature))

	var decoded domain.Event
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, uint64(7), decoded.Seq)
	assert.Equal(t, domain.EventAuditCompleted, decoded.Type)
}

func TestWebhookSink_NonSuccessStatusIsError(t *testing.T) {
	client := newFakeHTTPClient(http.StatusBadGateway)
	sink := NewWebhookSink("http://indexer.local/events", "s", NewHMACSignatureService(), client, zerolog.Nop())

	err := sink.deliver([]byte(`{}`), "sig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
