package ports

import (
	"context"
	"time"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// EventSink receives every committed ledger state transition, in order.
// Implementations must not block the write path; slow consumers buffer or
// drop on their own.
type EventSink interface {
	Emit(ctx context.Context, event *domain.Event)
}

// HashService handles password hashing.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(principalID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	PrincipalID uuid.UUID
	Username    string
}

// SignatureService handles HMAC-SHA256 signing and verification for
// outbound event webhooks.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// --- Service Ports (Business Logic) ---

// LedgerService is the single serialized write surface of the ledger plus its
// snapshot-consistent read queries. Caller identity is attributed explicitly
// on every operation that needs it.
type LedgerService interface {
	// Writes
	CreateAccount(ctx context.Context, caller uuid.UUID, encryptedBalance []byte, accountType string) (uint64, error)
	UpdateBalance(ctx context.Context, caller uuid.UUID, accountID uint64, encryptedBalance []byte, updateType string) error
	DeactivateAccount(ctx context.Context, caller uuid.UUID, accountID uint64) error
	ReactivateAccount(ctx context.Context, caller uuid.UUID, accountID uint64) error
	InitiateAudit(ctx context.Context, caller uuid.UUID, accountID uint64, auditType string) (uint64, error)
	CompleteAudit(ctx context.Context, caller uuid.UUID, auditID uint64, encryptedFlag []byte) error
	TransferAuditor(ctx context.Context, caller uuid.UUID, newAuditor uuid.UUID) error

	// Reads
	GetAccountInfo(ctx context.Context, accountID uint64) (*AccountInfo, error)
	GetUserAccounts(ctx context.Context, owner uuid.UUID) ([]uint64, error)
	GetBalanceCommitment(ctx context.Context, caller uuid.UUID, accountID uint64) (domain.Commitment, error)
	GetTransactionCommitment(ctx context.Context, caller uuid.UUID, accountID uint64) (domain.Commitment, error)
	GetAuditRecord(ctx context.Context, caller uuid.UUID, auditID uint64) (*domain.AuditRecord, error)
	GetAuditFlag(ctx context.Context, caller uuid.UUID, auditID uint64) (domain.Commitment, error)
	GetAccountAudits(ctx context.Context, accountID uint64) ([]uint64, error)
	GetTotalAccounts(ctx context.Context) uint64
	GetAuditor(ctx context.Context) uuid.UUID
}

// AccountInfo is the public projection of an account: lifecycle metadata
// without the restricted commitments.
type AccountInfo struct {
	ID             uint64            `json:"id"`
	Owner          uuid.UUID         `json:"owner"`
	Active         bool              `json:"active"`
	TypeCommitment domain.Commitment `json:"type_commitment"`
	UpdateCount    uint64            `json:"update_count"`
	CreatedAt      time.Time         `json:"created_at"`
	LastUpdated    time.Time         `json:"last_updated"`
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.Principal, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}
