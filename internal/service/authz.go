package service

import (
	"confidential-ledger/internal/core/domain"
	"confidential-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// Authorization predicates shared by every ledger operation. All of them are
// pure checks against the current snapshot and must be called with the ledger
// lock held; a failed predicate aborts the operation before any mutation.

// accountByID resolves an account id in [1, totalAccounts].
func (s *ledgerService) accountByID(id uint64) (*domain.Account, error) {
	if id == domain.NoAccount || id > uint64(len(s.accounts)) {
		return nil, apperror.ErrInvalidAccount()
	}
	return s.accounts[id-1], nil
}

// auditByID resolves a known audit id.
func (s *ledgerService) auditByID(id uint64) (*domain.AuditRecord, error) {
	record, ok := s.audits[id]
	if !ok {
		return nil, apperror.ErrAuditNotFound()
	}
	return record, nil
}

// requireOwner rejects callers that do not control the account. The auditor
// role grants no ownership rights.
func (s *ledgerService) requireOwner(account *domain.Account, caller uuid.UUID) error {
	if !account.IsOwnedBy(caller) {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// requireOwnerOrAuditor guards the commitment getters.
func (s *ledgerService) requireOwnerOrAuditor(account *domain.Account, caller uuid.UUID) error {
	if !account.IsOwnedBy(caller) && caller != s.auditor {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// requireAuditor rejects every caller but the current auditor.
func (s *ledgerService) requireAuditor(caller uuid.UUID) error {
	if caller != s.auditor {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// requireActive rejects operations on deactivated accounts.
func (s *ledgerService) requireActive(account *domain.Account) error {
	if !account.Active {
		return apperror.ErrInactiveAccount()
	}
	return nil
}
