package service

import (
	"context"
	"sync"
	"testing"

	"confidential-ledger/internal/core/domain"
	"confidential-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures emitted events in arrival order.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recordingSink) Emit(_ context.Context, event *domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
}

func (r *recordingSink) all() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingSink) last() domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type ledgerTestDeps struct {
	svc     *ledgerService
	sink    *recordingSink
	auditor uuid.UUID
}

func setupLedger(t *testing.T) *ledgerTestDeps {
	t.Helper()
	auditor := uuid.New()
	sink := &recordingSink{}
	svc, err := NewLedgerService(auditor, sink, zerolog.Nop())
	require.NoError(t, err)
	return &ledgerTestDeps{
		svc:     svc.(*ledgerService),
		sink:    sink,
		auditor: auditor,
	}
}

func TestNewLedgerService_NilAuditor(t *testing.T) {
	_, err := NewLedgerService(uuid.Nil, nil, zerolog.Nop())
	assert.Error(t, err)
}

// ==================== CreateAccount Tests ====================

func TestLedgerService_CreateAccount_Success(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()

	id, err := d.svc.CreateAccount(ctx, owner, []byte("ciphertext-1"), "checking")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	info, err := d.svc.GetAccountInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, owner, info.Owner)
	assert.True(t, info.Active)
	assert.Equal(t, uint64(0), info.UpdateCount)
	assert.Equal(t, domain.LabelCommitment("checking"), info.TypeCommitment)

	events := d.sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventAccountCreated, events[0].Type)
	assert.Equal(t, uint64(1), events[0].Seq)
	assert.Equal(t, id, events[0].AccountID)
	require.NotNil(t, events[0].Owner)
	assert.Equal(t, owner, *events[0].Owner)
}

func TestLedgerService_CreateAccount_SequentialIDs(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		id, err := d.svc.CreateAccount(ctx, uuid.New(), []byte("enc"), "savings")
		require.NoError(t, err)
		assert.Equal(t, uint64(i), id)
	}
	assert.Equal(t, uint64(5), d.svc.GetTotalAccounts(ctx))
}

func TestLedgerService_CreateAccount_InitialCommitments(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	payload := []byte("opening-balance-ciphertext")

	id, err := d.svc.CreateAccount(ctx, owner, payload, "checking")
	require.NoError(t, err)

	balance, err := d.svc.GetBalanceCommitment(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, domain.NewCommitment(payload), balance)

	chain, err := d.svc.GetTransactionCommitment(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, domain.InitialChainCommitment(), chain)
}

func TestLedgerService_CreateAccount_Validation(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	_, err := d.svc.CreateAccount(ctx, uuid.Nil, []byte("enc"), "checking")
	assert.Equal(t, "LGR_001", apperror.Code(err))

	_, err = d.svc.CreateAccount(ctx, uuid.New(), nil, "checking")
	assert.Equal(t, "VAL_001", apperror.Code(err))

	_, err = d.svc.CreateAccount(ctx, uuid.New(), []byte("enc"), "")
	assert.Equal(t, "VAL_001", apperror.Code(err))

	assert.Empty(t, d.sink.all())
	assert.Equal(t, uint64(0), d.svc.GetTotalAccounts(ctx))
}

func TestLedgerService_CreateAccount_AuditorMayOwnAccounts(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	// The auditor role restricts audit operations, not account ownership.
	id, err := d.svc.CreateAccount(ctx, d.auditor, []byte("enc"), "checking")
	require.NoError(t, err)

	err = d.svc.UpdateBalance(ctx, d.auditor, id, []byte("enc-2"), "deposit")
	assert.NoError(t, err)
}

// ==================== UpdateBalance Tests ====================

func TestLedgerService_UpdateBalance_Success(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc-1"), "checking")
	require.NoError(t, err)

	err = d.svc.UpdateBalance(ctx, owner, id, []byte("enc-2"), "deposit")
	require.NoError(t, err)

	info, err := d.svc.GetAccountInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.UpdateCount)

	balance, err := d.svc.GetBalanceCommitment(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, domain.NewCommitment([]byte("enc-2")), balance)

	event := d.sink.last()
	assert.Equal(t, domain.EventBalanceUpdated, event.Type)
	assert.Equal(t, id, event.AccountID)
	require.NotNil(t, event.TypeCommitment)
	assert.Equal(t, domain.LabelCommitment("deposit"), *event.TypeCommitment)
}

func TestLedgerService_UpdateBalance_ChainAdvances(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc-1"), "checking")
	require.NoError(t, err)

	// The chain head must be recomputable from the update count alone.
	expected := domain.InitialChainCommitment()
	for i := uint64(1); i <= 3; i++ {
		require.NoError(t, d.svc.UpdateBalance(ctx, owner, id, []byte{byte(i)}, "deposit"))
		expected = domain.ChainCommitment(expected, i)
	}

	chain, err := d.svc.GetTransactionCommitment(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, expected, chain)
}

func TestLedgerService_UpdateBalance_NonOwnerDenied(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	id, err := d.svc.CreateAccount(ctx, uuid.New(), []byte("enc"), "checking")
	require.NoError(t, err)

	err = d.svc.UpdateBalance(ctx, uuid.New(), id, []byte("enc-2"), "deposit")
	assert.Equal(t, "LGR_001", apperror.Code(err))

	// The auditor holds no ownership rights either.
	err = d.svc.UpdateBalance(ctx, d.auditor, id, []byte("enc-2"), "deposit")
	assert.Equal(t, "LGR_001", apperror.Code(err))

	info, err := d.svc.GetAccountInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), info.UpdateCount)
}

func TestLedgerService_UpdateBalance_UnknownAccount(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	err := d.svc.UpdateBalance(ctx, uuid.New(), 0, []byte("enc"), "deposit")
	assert.Equal(t, "LGR_002", apperror.Code(err))

	err = d.svc.UpdateBalance(ctx, uuid.New(), 42, []byte("enc"), "deposit")
	assert.Equal(t, "LGR_002", apperror.Code(err))
}

// ==================== Activation Tests ====================

func TestLedgerService_DeactivateReactivate_Cycle(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc"), "checking")
	require.NoError(t, err)
	require.NoError(t, d.svc.UpdateBalance(ctx, owner, id, []byte("enc-2"), "deposit"))

	require.NoError(t, d.svc.DeactivateAccount(ctx, owner, id))

	// Frozen: balance updates rejected, identity preserved.
	err = d.svc.UpdateBalance(ctx, owner, id, []byte("enc-3"), "deposit")
	assert.Equal(t, "LGR_003", apperror.Code(err))

	info, err := d.svc.GetAccountInfo(ctx, id)
	require.NoError(t, err)
	assert.False(t, info.Active)
	assert.Equal(t, owner, info.Owner)
	assert.Equal(t, domain.LabelCommitment("checking"), info.TypeCommitment)
	assert.Equal(t, uint64(1), info.UpdateCount)

	require.NoError(t, d.svc.ReactivateAccount(ctx, owner, id))
	assert.NoError(t, d.svc.UpdateBalance(ctx, owner, id, []byte("enc-3"), "deposit"))
}

func TestLedgerService_SetActive_Idempotent(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc"), "checking")
	require.NoError(t, err)

	// Reactivating an active account is a no-op and emits nothing.
	before := len(d.sink.all())
	require.NoError(t, d.svc.ReactivateAccount(ctx, owner, id))
	assert.Len(t, d.sink.all(), before)

	require.NoError(t, d.svc.DeactivateAccount(ctx, owner, id))
	afterFirst := len(d.sink.all())
	assert.Equal(t, before+1, afterFirst)
	event := d.sink.last()
	assert.Equal(t, domain.EventAccountStatusChanged, event.Type)
	require.NotNil(t, event.Active)
	assert.False(t, *event.Active)

	require.NoError(t, d.svc.DeactivateAccount(ctx, owner, id))
	assert.Len(t, d.sink.all(), afterFirst)
}

func TestLedgerService_SetActive_OwnerOnly(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	id, err := d.svc.CreateAccount(ctx, uuid.New(), []byte("enc"), "checking")
	require.NoError(t, err)

	assert.Equal(t, "LGR_001", apperror.Code(d.svc.DeactivateAccount(ctx, uuid.New(), id)))
	assert.Equal(t, "LGR_001", apperror.Code(d.svc.DeactivateAccount(ctx, d.auditor, id)))
}

// ==================== InitiateAudit Tests ====================

func TestLedgerService_InitiateAudit_Success(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc-1"), "checking")
	require.NoError(t, err)

	auditID, err := d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), auditID)

	record, err := d.svc.GetAuditRecord(ctx, d.auditor, auditID)
	require.NoError(t, err)
	assert.Equal(t, id, record.AccountID)
	assert.False(t, record.Completed)
	assert.Nil(t, record.CompletedAt)
	assert.Equal(t, domain.NewCommitment([]byte("enc-1")), record.BalanceSnapshot)
	assert.Equal(t, domain.NoDiscrepancy(), record.Discrepancy)
	assert.Equal(t, domain.LabelCommitment("quarterly"), record.TypeCommitment)
	assert.False(t, record.Ref.IsZero())

	event := d.sink.last()
	assert.Equal(t, domain.EventAuditInitiated, event.Type)
	assert.Equal(t, auditID, event.AuditID)
	assert.Equal(t, id, event.AccountID)
}

func TestLedgerService_InitiateAudit_SnapshotFrozen(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc-1"), "checking")
	require.NoError(t, err)

	auditID, err := d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
	require.NoError(t, err)

	// A later balance update must not leak into the frozen snapshot.
	require.NoError(t, d.svc.UpdateBalance(ctx, owner, id, []byte("enc-2"), "deposit"))

	record, err := d.svc.GetAuditRecord(ctx, d.auditor, auditID)
	require.NoError(t, err)
	assert.Equal(t, domain.NewCommitment([]byte("enc-1")), record.BalanceSnapshot)
}

func TestLedgerService_InitiateAudit_AuditorOnly(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc"), "checking")
	require.NoError(t, err)

	_, err = d.svc.InitiateAudit(ctx, owner, id, "quarterly")
	assert.Equal(t, "LGR_001", apperror.Code(err))
}

func TestLedgerService_InitiateAudit_InactiveAccount(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc"), "checking")
	require.NoError(t, err)
	require.NoError(t, d.svc.DeactivateAccount(ctx, owner, id))

	_, err = d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
	assert.Equal(t, "LGR_003", apperror.Code(err))
}

func TestLedgerService_InitiateAudit_UniqueRefs(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	id, err := d.svc.CreateAccount(ctx, uuid.New(), []byte("enc"), "checking")
	require.NoError(t, err)

	seen := make(map[domain.Commitment]bool)
	for i := 0; i < 10; i++ {
		auditID, err := d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
		require.NoError(t, err)
		assert.Equal(t, uint64(i+1), auditID)

		record, err := d.svc.GetAuditRecord(ctx, d.auditor, auditID)
		require.NoError(t, err)
		assert.False(t, seen[record.Ref], "audit refs must be unique")
		seen[record.Ref] = true
	}

	ids, err := d.svc.GetAccountAudits(ctx, id)
	require.NoError(t, err)
	assert.Len(t, ids, 10)
}

// ==================== CompleteAudit Tests ====================

func TestLedgerService_CompleteAudit_Success(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	id, err := d.svc.CreateAccount(ctx, uuid.New(), []byte("enc"), "checking")
	require.NoError(t, err)
	auditID, err := d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
	require.NoError(t, err)

	err = d.svc.CompleteAudit(ctx, d.auditor, auditID, []byte("enc-flag"))
	require.NoError(t, err)

	record, err := d.svc.GetAuditRecord(ctx, d.auditor, auditID)
	require.NoError(t, err)
	assert.True(t, record.Completed)
	require.NotNil(t, record.CompletedAt)

	flag, err := d.svc.GetAuditFlag(ctx, d.auditor, auditID)
	require.NoError(t, err)
	assert.Equal(t, domain.NewCommitment([]byte("enc-flag")), flag)

	event := d.sink.last()
	assert.Equal(t, domain.EventAuditCompleted, event.Type)
	assert.Equal(t, auditID, event.AuditID)
}

func TestLedgerService_CompleteAudit_OneShot(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	id, err := d.svc.CreateAccount(ctx, uuid.New(), []byte("enc"), "checking")
	require.NoError(t, err)
	auditID, err := d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
	require.NoError(t, err)
	require.NoError(t, d.svc.CompleteAudit(ctx, d.auditor, auditID, []byte("first")))

	eventsBefore := len(d.sink.all())

	// Second completion fails and leaves the first result untouched.
	err = d.svc.CompleteAudit(ctx, d.auditor, auditID, []byte("second"))
	assert.Equal(t, "LGR_005", apperror.Code(err))

	flag, err := d.svc.GetAuditFlag(ctx, d.auditor, auditID)
	require.NoError(t, err)
	assert.Equal(t, domain.NewCommitment([]byte("first")), flag)
	assert.Len(t, d.sink.all(), eventsBefore)
}

func TestLedgerService_CompleteAudit_Errors(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc"), "checking")
	require.NoError(t, err)
	auditID, err := d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
	require.NoError(t, err)

	err = d.svc.CompleteAudit(ctx, owner, auditID, []byte("flag"))
	assert.Equal(t, "LGR_001", apperror.Code(err))

	err = d.svc.CompleteAudit(ctx, d.auditor, 999, []byte("flag"))
	assert.Equal(t, "LGR_004", apperror.Code(err))

	err = d.svc.CompleteAudit(ctx, d.auditor, auditID, nil)
	assert.Equal(t, "VAL_001", apperror.Code(err))
}

// ==================== TransferAuditor Tests ====================

func TestLedgerService_TransferAuditor_Success(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	id, err := d.svc.CreateAccount(ctx, uuid.New(), []byte("enc"), "checking")
	require.NoError(t, err)

	next := uuid.New()
	require.NoError(t, d.svc.TransferAuditor(ctx, d.auditor, next))
	assert.Equal(t, next, d.svc.GetAuditor(ctx))

	// Old auditor lost the role; the new one holds it.
	_, err = d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
	assert.Equal(t, "LGR_001", apperror.Code(err))

	_, err = d.svc.InitiateAudit(ctx, next, id, "quarterly")
	assert.NoError(t, err)

	events := d.sink.all()
	var transfer *domain.Event
	for i := range events {
		if events[i].Type == domain.EventAuditorTransferred {
			transfer = &events[i]
		}
	}
	require.NotNil(t, transfer)
	assert.Equal(t, d.auditor, *transfer.PrevAuditor)
	assert.Equal(t, next, *transfer.NewAuditor)
}

func TestLedgerService_TransferAuditor_InvalidTarget(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	assert.Equal(t, "LGR_006", apperror.Code(d.svc.TransferAuditor(ctx, d.auditor, uuid.Nil)))
	assert.Equal(t, "LGR_006", apperror.Code(d.svc.TransferAuditor(ctx, d.auditor, d.auditor)))
	assert.Equal(t, "LGR_001", apperror.Code(d.svc.TransferAuditor(ctx, uuid.New(), uuid.New())))

	assert.Equal(t, d.auditor, d.svc.GetAuditor(ctx))
}

// ==================== Query Authorization Tests ====================

func TestLedgerService_CommitmentGetters_OwnerOrAuditor(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc"), "checking")
	require.NoError(t, err)

	_, err = d.svc.GetBalanceCommitment(ctx, owner, id)
	assert.NoError(t, err)
	_, err = d.svc.GetBalanceCommitment(ctx, d.auditor, id)
	assert.NoError(t, err)
	_, err = d.svc.GetBalanceCommitment(ctx, stranger, id)
	assert.Equal(t, "LGR_001", apperror.Code(err))

	_, err = d.svc.GetTransactionCommitment(ctx, owner, id)
	assert.NoError(t, err)
	_, err = d.svc.GetTransactionCommitment(ctx, d.auditor, id)
	assert.NoError(t, err)
	_, err = d.svc.GetTransactionCommitment(ctx, stranger, id)
	assert.Equal(t, "LGR_001", apperror.Code(err))

	_, err = d.svc.GetBalanceCommitment(ctx, owner, 99)
	assert.Equal(t, "LGR_002", apperror.Code(err))
}

func TestLedgerService_AuditGetters_AuditorOnly(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc"), "checking")
	require.NoError(t, err)
	auditID, err := d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
	require.NoError(t, err)

	// Even the audited account's owner may not read audit internals.
	_, err = d.svc.GetAuditRecord(ctx, owner, auditID)
	assert.Equal(t, "LGR_001", apperror.Code(err))
	_, err = d.svc.GetAuditFlag(ctx, owner, auditID)
	assert.Equal(t, "LGR_001", apperror.Code(err))

	_, err = d.svc.GetAuditRecord(ctx, d.auditor, 999)
	assert.Equal(t, "LGR_004", apperror.Code(err))
}

func TestLedgerService_GetUserAccounts(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	a1, _ := d.svc.CreateAccount(ctx, alice, []byte("a1"), "checking")
	b1, _ := d.svc.CreateAccount(ctx, bob, []byte("b1"), "savings")
	a2, _ := d.svc.CreateAccount(ctx, alice, []byte("a2"), "savings")

	ids, err := d.svc.GetUserAccounts(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a1, a2}, ids)

	ids, err = d.svc.GetUserAccounts(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []uint64{b1}, ids)

	// Deactivation does not remove accounts from the owner index.
	require.NoError(t, d.svc.DeactivateAccount(ctx, alice, a1))
	ids, err = d.svc.GetUserAccounts(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a1, a2}, ids)

	ids, err = d.svc.GetUserAccounts(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLedgerService_GetAccountAudits_UnknownAccount(t *testing.T) {
	d := setupLedger(t)
	_, err := d.svc.GetAccountAudits(context.Background(), 7)
	assert.Equal(t, "LGR_002", apperror.Code(err))
}

// ==================== Event Stream Tests ====================

func TestLedgerService_EventStream_ContiguousSequence(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()

	id, _ := d.svc.CreateAccount(ctx, owner, []byte("enc-1"), "checking")
	_ = d.svc.UpdateBalance(ctx, owner, id, []byte("enc-2"), "deposit")
	auditID, _ := d.svc.InitiateAudit(ctx, d.auditor, id, "quarterly")
	_ = d.svc.CompleteAudit(ctx, d.auditor, auditID, []byte("flag"))
	_ = d.svc.DeactivateAccount(ctx, owner, id)
	_ = d.svc.TransferAuditor(ctx, d.auditor, uuid.New())

	events := d.sink.all()
	require.Len(t, events, 6)
	expected := []domain.EventType{
		domain.EventAccountCreated,
		domain.EventBalanceUpdated,
		domain.EventAuditInitiated,
		domain.EventAuditCompleted,
		domain.EventAccountStatusChanged,
		domain.EventAuditorTransferred,
	}
	for i, event := range events {
		assert.Equal(t, uint64(i+1), event.Seq)
		assert.Equal(t, expected[i], event.Type)
		assert.False(t, event.Timestamp.IsZero())
	}
}

// ==================== Concurrency Tests ====================

func TestLedgerService_ConcurrentCreates_UniqueSequentialIDs(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()

	const n = 64
	ids := make(chan uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := d.svc.CreateAccount(ctx, uuid.New(), []byte("enc"), "checking")
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate account id %d", id)
		assert.GreaterOrEqual(t, id, uint64(1))
		assert.LessOrEqual(t, id, uint64(n))
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, uint64(n), d.svc.GetTotalAccounts(ctx))

	// Every write produced exactly one event with a unique sequence number.
	events := d.sink.all()
	require.Len(t, events, n)
	seqs := make(map[uint64]bool)
	for _, event := range events {
		seqs[event.Seq] = true
	}
	assert.Len(t, seqs, n)
}

func TestLedgerService_ConcurrentMixedOps(t *testing.T) {
	d := setupLedger(t)
	ctx := context.Background()
	owner := uuid.New()
	id, err := d.svc.CreateAccount(ctx, owner, []byte("enc"), "checking")
	require.NoError(t, err)

	const updates = 32
	var wg sync.WaitGroup
	for i := 0; i < updates; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, d.svc.UpdateBalance(ctx, owner, id, []byte{byte(i)}, "deposit"))
		}(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.svc.GetAccountInfo(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	info, err := d.svc.GetAccountInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(updates), info.UpdateCount)

	// Chain head reflects exactly `updates` applications regardless of order.
	expected := domain.InitialChainCommitment()
	for i := uint64(1); i <= updates; i++ {
		expected = domain.ChainCommitment(expected, i)
	}
	chain, err := d.svc.GetTransactionCommitment(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, expected, chain)
}
