package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_ConcurrentAccountCreation(t *testing.T) {
	app := newTestApp(t)

	const n = 32
	ids := make(chan uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, _, err := app.tokenSvc.Generate(uuid.New(), "tester")
			if !assert.NoError(t, err) {
				return
			}

			resp, raw := app.do(t, http.MethodPost, "/api/v1/accounts", token, map[string]string{
				"encrypted_balance": enc("opening"),
				"account_type":      "checking",
			})
			if !assert.Equal(t, http.StatusCreated, resp.StatusCode) {
				return
			}

			var created struct {
				AccountID uint64 `json:"account_id"`
			}
			dataOf(t, raw, &created)
			ids <- created.AccountID
		}()
	}
	wg.Wait()
	close(ids)

	// Every request won its own id; the set is exactly 1..n.
	seen := make(map[uint64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate account id %d", id)
		assert.GreaterOrEqual(t, id, uint64(1))
		assert.LessOrEqual(t, id, uint64(n))
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, uint64(n), app.ledger.GetTotalAccounts(context.Background()))

	// The journal drains one event per commit with unique sequence numbers.
	require.Eventually(t, func() bool {
		return app.journal.size() >= n
	}, 3*time.Second, 10*time.Millisecond)

	events, err := app.journal.ListAfter(context.Background(), 0, n+1)
	require.NoError(t, err)
	require.Len(t, events, n)
	seqs := make(map[uint64]bool)
	for _, event := range events {
		assert.Equal(t, domain.EventAccountCreated, event.Type)
		seqs[event.Seq] = true
	}
	assert.Len(t, seqs, n)
}

func TestAPI_ConcurrentUpdatesSingleAccount(t *testing.T) {
	app := newTestApp(t)
	owner := uuid.New()
	token, _, err := app.tokenSvc.Generate(owner, "owner")
	require.NoError(t, err)

	resp, _ := app.do(t, http.MethodPost, "/api/v1/accounts", token, map[string]string{
		"encrypted_balance": enc("opening"),
		"account_type":      "checking",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	const updates = 16
	var wg sync.WaitGroup
	for i := 0; i < updates; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, _ := app.do(t, http.MethodPut, "/api/v1/accounts/1/balance", token, map[string]string{
				"encrypted_balance": enc("update"),
				"update_type":       "deposit",
			})
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}()
	}
	wg.Wait()

	info, err := app.ledger.GetAccountInfo(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(updates), info.UpdateCount)

	// Chain head equals `updates` sequential applications of the chain hash.
	expected := domain.InitialChainCommitment()
	for i := uint64(1); i <= updates; i++ {
		expected = domain.ChainCommitment(expected, i)
	}
	chain, err := app.ledger.GetTransactionCommitment(context.Background(), owner, 1)
	require.NoError(t, err)
	assert.Equal(t, expected, chain)
}
