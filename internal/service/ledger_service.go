package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ledgerService implements ports.LedgerService.
//
// One RWMutex serializes every write: an operation either passes all of its
// precondition checks and commits its full effect (mutation + event), or it
// leaves the ledger untouched. Reads take the shared lock and observe a
// consistent snapshot relative to the last committed write.
type ledgerService struct {
	mu sync.RWMutex

	auditor       uuid.UUID
	accounts      []*domain.Account // index i holds account id i+1
	audits        map[uint64]*domain.AuditRecord
	ownerIndex    map[uuid.UUID][]uint64 // append-only
	accountAudits map[uint64][]uint64    // append-only
	nextAuditID   uint64
	eventSeq      uint64

	sink ports.EventSink
	log  zerolog.Logger
}

// NewLedgerService creates a ledger with the given initial auditor.
// If sink is nil, state transitions are not broadcast.
func NewLedgerService(auditor uuid.UUID, sink ports.EventSink, log zerolog.Logger) (ports.LedgerService, error) {
	if auditor == uuid.Nil {
		return nil, fmt.Errorf("initial auditor must not be nil")
	}
	return &ledgerService{
		auditor:       auditor,
		audits:        make(map[uint64]*domain.AuditRecord),
		ownerIndex:    make(map[uuid.UUID][]uint64),
		accountAudits: make(map[uint64][]uint64),
		sink:          sink,
		log:           log,
	}, nil
}

// emit assigns the next sequence number and hands the event to the sink.
// Must be called with the write lock held so ordering matches commit order.
func (s *ledgerService) emit(ctx context.Context, event *domain.Event) {
	s.eventSeq++
	event.Seq = s.eventSeq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if s.sink != nil {
		s.sink.Emit(ctx, event)
	}
}

// CreateAccount assigns the next sequential account id and records the
// commitments of the caller's externally-encrypted opening balance.
func (s *ledgerService) CreateAccount(ctx context.Context, caller uuid.UUID, encryptedBalance []byte, accountType string) (uint64, error) {
	if caller == uuid.Nil {
		return 0, apperror.ErrUnauthorized()
	}
	if len(encryptedBalance) == 0 {
		return 0, apperror.Validation("encrypted balance must not be empty")
	}
	if accountType == "" {
		return 0, apperror.Validation("account type must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	typeCommitment := domain.LabelCommitment(accountType)
	account := &domain.Account{
		ID:                    uint64(len(s.accounts)) + 1,
		Owner:                 caller,
		BalanceCommitment:     domain.NewCommitment(encryptedBalance),
		TransactionCommitment: domain.InitialChainCommitment(),
		Active:                true,
		TypeCommitment:        typeCommitment,
		CreatedAt:             now,
		LastUpdated:           now,
	}
	s.accounts = append(s.accounts, account)
	s.ownerIndex[caller] = append(s.ownerIndex[caller], account.ID)

	s.emit(ctx, &domain.Event{
		Type:           domain.EventAccountCreated,
		AccountID:      account.ID,
		Owner:          &caller,
		TypeCommitment: &typeCommitment,
		Timestamp:      now,
	})

	s.log.Info().
		Uint64("account_id", account.ID).
		Str("owner", caller.String()).
		Msg("account created")

	return account.ID, nil
}

// UpdateBalance replaces the balance commitment and advances the transaction
// chain, so the chain commits to the full update history.
func (s *ledgerService) UpdateBalance(ctx context.Context, caller uuid.UUID, accountID uint64, encryptedBalance []byte, updateType string) error {
	if len(encryptedBalance) == 0 {
		return apperror.Validation("encrypted balance must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accountByID(accountID)
	if err != nil {
		return err
	}
	if err := s.requireOwner(account, caller); err != nil {
		return err
	}
	if err := s.requireActive(account); err != nil {
		return err
	}

	now := time.Now().UTC()
	account.BalanceCommitment = domain.NewCommitment(encryptedBalance)
	account.UpdateCount++
	account.TransactionCommitment = domain.ChainCommitment(account.TransactionCommitment, account.UpdateCount)
	account.LastUpdated = now

	updateCommitment := domain.LabelCommitment(updateType)
	s.emit(ctx, &domain.Event{
		Type:           domain.EventBalanceUpdated,
		AccountID:      account.ID,
		TypeCommitment: &updateCommitment,
		Timestamp:      now,
	})

	s.log.Info().
		Uint64("account_id", account.ID).
		Uint64("update_count", account.UpdateCount).
		Msg("balance updated")

	return nil
}

// DeactivateAccount flips the account inactive. Calling it on an already
// inactive account is a permitted no-op.
func (s *ledgerService) DeactivateAccount(ctx context.Context, caller uuid.UUID, accountID uint64) error {
	return s.setActive(ctx, caller, accountID, false)
}

// ReactivateAccount flips the account active. Idempotent like deactivation.
func (s *ledgerService) ReactivateAccount(ctx context.Context, caller uuid.UUID, accountID uint64) error {
	return s.setActive(ctx, caller, accountID, true)
}

func (s *ledgerService) setActive(ctx context.Context, caller uuid.UUID, accountID uint64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accountByID(accountID)
	if err != nil {
		return err
	}
	if err := s.requireOwner(account, caller); err != nil {
		return err
	}
	if account.Active == active {
		return nil
	}

	now := time.Now().UTC()
	account.Active = active
	account.LastUpdated = now

	s.emit(ctx, &domain.Event{
		Type:      domain.EventAccountStatusChanged,
		AccountID: account.ID,
		Active:    &active,
		Timestamp: now,
	})

	s.log.Info().
		Uint64("account_id", account.ID).
		Bool("active", active).
		Msg("account status changed")

	return nil
}

// InitiateAudit opens an audit on an active account, freezing a snapshot of
// its current balance commitment. Audit ids are a monotonic counter; the
// record additionally carries an unpredictable correlation hash for external
// reference, so uniqueness never rests on derived values.
func (s *ledgerService) InitiateAudit(ctx context.Context, caller uuid.UUID, accountID uint64, auditType string) (uint64, error) {
	if auditType == "" {
		return 0, apperror.Validation("audit type must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAuditor(caller); err != nil {
		return 0, err
	}
	account, err := s.accountByID(accountID)
	if err != nil {
		return 0, err
	}
	if err := s.requireActive(account); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	ref, err := newAuditRef(now, accountID, caller)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("derive audit ref: %w", err))
	}

	typeCommitment := domain.LabelCommitment(auditType)
	s.nextAuditID++
	record := &domain.AuditRecord{
		ID:              s.nextAuditID,
		Ref:             ref,
		AccountID:       account.ID,
		BalanceSnapshot: account.BalanceCommitment,
		Discrepancy:     domain.NoDiscrepancy(),
		TypeCommitment:  typeCommitment,
		InitiatedAt:     now,
	}
	s.audits[record.ID] = record
	s.accountAudits[account.ID] = append(s.accountAudits[account.ID], record.ID)

	s.emit(ctx, &domain.Event{
		Type:           domain.EventAuditInitiated,
		AccountID:      account.ID,
		AuditID:        record.ID,
		TypeCommitment: &typeCommitment,
		Timestamp:      now,
	})

	s.log.Info().
		Uint64("audit_id", record.ID).
		Uint64("account_id", account.ID).
		Msg("audit initiated")

	return record.ID, nil
}

// CompleteAudit records the discrepancy flag commitment and closes the audit.
// The transition is one-way; a second attempt fails without changing state.
func (s *ledgerService) CompleteAudit(ctx context.Context, caller uuid.UUID, auditID uint64, encryptedFlag []byte) error {
	if len(encryptedFlag) == 0 {
		return apperror.Validation("encrypted flag must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAuditor(caller); err != nil {
		return err
	}
	record, err := s.auditByID(auditID)
	if err != nil {
		return err
	}
	if record.Completed {
		return apperror.ErrAuditAlreadyCompleted()
	}

	now := time.Now().UTC()
	record.Discrepancy = domain.NewCommitment(encryptedFlag)
	record.Completed = true
	record.CompletedAt = &now

	s.emit(ctx, &domain.Event{
		Type:      domain.EventAuditCompleted,
		AccountID: record.AccountID,
		AuditID:   record.ID,
		Timestamp: now,
	})

	s.log.Info().
		Uint64("audit_id", record.ID).
		Uint64("account_id", record.AccountID).
		Msg("audit completed")

	return nil
}

// TransferAuditor atomically hands the auditor role to a new principal.
func (s *ledgerService) TransferAuditor(ctx context.Context, caller uuid.UUID, newAuditor uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAuditor(caller); err != nil {
		return err
	}
	if newAuditor == uuid.Nil || newAuditor == s.auditor {
		return apperror.ErrInvalidAuditor()
	}

	previous := s.auditor
	s.auditor = newAuditor

	s.emit(ctx, &domain.Event{
		Type:        domain.EventAuditorTransferred,
		PrevAuditor: &previous,
		NewAuditor:  &newAuditor,
	})

	s.log.Info().
		Str("previous", previous.String()).
		Str("new", newAuditor.String()).
		Msg("auditor transferred")

	return nil
}

// GetAccountInfo returns the public projection of an account.
func (s *ledgerService) GetAccountInfo(ctx context.Context, accountID uint64) (*ports.AccountInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.accountByID(accountID)
	if err != nil {
		return nil, err
	}
	return &ports.AccountInfo{
		ID:             account.ID,
		Owner:          account.Owner,
		Active:         account.Active,
		TypeCommitment: account.TypeCommitment,
		UpdateCount:    account.UpdateCount,
		CreatedAt:      account.CreatedAt,
		LastUpdated:    account.LastUpdated,
	}, nil
}

// GetUserAccounts returns the ordered account ids ever created by the owner.
// Deactivated accounts stay listed; the index is append-only.
func (s *ledgerService) GetUserAccounts(ctx context.Context, owner uuid.UUID) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.ownerIndex[owner]
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out, nil
}

// GetBalanceCommitment returns the current balance commitment. Restricted to
// the account owner and the current auditor.
func (s *ledgerService) GetBalanceCommitment(ctx context.Context, caller uuid.UUID, accountID uint64) (domain.Commitment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.accountByID(accountID)
	if err != nil {
		return domain.Commitment{}, err
	}
	if err := s.requireOwnerOrAuditor(account, caller); err != nil {
		return domain.Commitment{}, err
	}
	return account.BalanceCommitment, nil
}

// GetTransactionCommitment returns the transaction chain head. Restricted to
// the account owner and the current auditor.
func (s *ledgerService) GetTransactionCommitment(ctx context.Context, caller uuid.UUID, accountID uint64) (domain.Commitment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.accountByID(accountID)
	if err != nil {
		return domain.Commitment{}, err
	}
	if err := s.requireOwnerOrAuditor(account, caller); err != nil {
		return domain.Commitment{}, err
	}
	return account.TransactionCommitment, nil
}

// GetAuditRecord returns a copy of an audit record. Auditor only.
func (s *ledgerService) GetAuditRecord(ctx context.Context, caller uuid.UUID, auditID uint64) (*domain.AuditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireAuditor(caller); err != nil {
		return nil, err
	}
	record, err := s.auditByID(auditID)
	if err != nil {
		return nil, err
	}
	out := *record
	return &out, nil
}

// GetAuditFlag returns the discrepancy flag commitment. Auditor only.
func (s *ledgerService) GetAuditFlag(ctx context.Context, caller uuid.UUID, auditID uint64) (domain.Commitment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireAuditor(caller); err != nil {
		return domain.Commitment{}, err
	}
	record, err := s.auditByID(auditID)
	if err != nil {
		return domain.Commitment{}, err
	}
	return record.Discrepancy, nil
}

// GetAccountAudits returns the ordered audit ids opened against an account.
func (s *ledgerService) GetAccountAudits(ctx context.Context, accountID uint64) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.accountByID(accountID); err != nil {
		return nil, err
	}
	ids := s.accountAudits[accountID]
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out, nil
}

// GetTotalAccounts returns the number of accounts ever created.
func (s *ledgerService) GetTotalAccounts(ctx context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.accounts))
}

// GetAuditor returns the current auditor identity.
func (s *ledgerService) GetAuditor(ctx context.Context) uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auditor
}

// newAuditRef derives the opaque correlation hash attached to every audit:
// H(timestamp || random || accountId || auditor).
func newAuditRef(ts time.Time, accountID uint64, auditor uuid.UUID) (domain.Commitment, error) {
	var nonce [16]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return domain.Commitment{}, err
	}

	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(ts.UnixNano()))
	h.Write(buf[:])
	h.Write(nonce[:])
	binary.BigEndian.PutUint64(buf[:], accountID)
	h.Write(buf[:])
	h.Write(auditor[:])

	var ref domain.Commitment
	copy(ref[:], h.Sum(nil))
	return ref, nil
}
