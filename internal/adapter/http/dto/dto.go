package dto

// RegisterRequest is the request body for principal registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for principal login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	PrincipalID string `json:"principal_id"`
	Username    string `json:"username"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateAccountRequest is the request body for account creation.
// EncryptedBalance carries the externally-encrypted opening balance;
// the service only ever stores its hash.
type CreateAccountRequest struct {
	EncryptedBalance string `json:"encrypted_balance" binding:"required,base64"`
	AccountType      string `json:"account_type" binding:"required,max=64"`
}

// CreateAccountResponse is the response body for account creation.
type CreateAccountResponse struct {
	AccountID uint64 `json:"account_id"`
}

// UpdateBalanceRequest is the request body for a balance update.
type UpdateBalanceRequest struct {
	EncryptedBalance string `json:"encrypted_balance" binding:"required,base64"`
	UpdateType       string `json:"update_type" binding:"required,max=64"`
}

// AccountInfoResponse is the public projection of an account.
type AccountInfoResponse struct {
	ID             uint64 `json:"id"`
	Owner          string `json:"owner"`
	Active         bool   `json:"active"`
	TypeCommitment string `json:"type_commitment"`
	UpdateCount    uint64 `json:"update_count"`
	CreatedAt      string `json:"created_at"`
	LastUpdated    string `json:"last_updated"`
}

// CommitmentResponse carries a single hex-encoded commitment.
type CommitmentResponse struct {
	AccountID  uint64 `json:"account_id,omitempty"`
	AuditID    uint64 `json:"audit_id,omitempty"`
	Commitment string `json:"commitment"`
}

// AccountListResponse lists account ids in creation order.
type AccountListResponse struct {
	AccountIDs []uint64 `json:"account_ids"`
}

// InitiateAuditRequest is the request body for opening an audit.
type InitiateAuditRequest struct {
	AccountID uint64 `json:"account_id" binding:"required,gt=0"`
	AuditType string `json:"audit_type" binding:"required,max=64"`
}

// InitiateAuditResponse is the response body for a newly opened audit.
type InitiateAuditResponse struct {
	AuditID uint64 `json:"audit_id"`
}

// CompleteAuditRequest is the request body for completing an audit.
type CompleteAuditRequest struct {
	EncryptedFlag string `json:"encrypted_flag" binding:"required,base64"`
}

// AuditRecordResponse is the auditor's view of an audit record.
type AuditRecordResponse struct {
	ID              uint64  `json:"id"`
	Ref             string  `json:"ref"`
	AccountID       uint64  `json:"account_id"`
	BalanceSnapshot string  `json:"balance_snapshot"`
	Discrepancy     string  `json:"discrepancy"`
	TypeCommitment  string  `json:"type_commitment"`
	Completed       bool    `json:"completed"`
	InitiatedAt     string  `json:"initiated_at"`
	CompletedAt     *string `json:"completed_at,omitempty"`
}

// AuditListResponse lists audit ids in initiation order.
type AuditListResponse struct {
	AccountID uint64   `json:"account_id"`
	AuditIDs  []uint64 `json:"audit_ids"`
}

// TransferAuditorRequest is the request body for an auditor handover.
type TransferAuditorRequest struct {
	NewAuditor string `json:"new_auditor" binding:"required,uuid"`
}

// LedgerInfoResponse summarizes the ledger's global state.
type LedgerInfoResponse struct {
	TotalAccounts uint64 `json:"total_accounts"`
	Auditor       string `json:"auditor"`
}
