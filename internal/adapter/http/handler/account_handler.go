package handler

import (
	"strconv"
	"time"

	"confidential-ledger/internal/adapter/http/dto"
	"confidential-ledger/internal/adapter/http/middleware"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"
	"confidential-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles account lifecycle and query endpoints.
type AccountHandler struct {
	ledgerSvc ports.LedgerService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledgerSvc ports.LedgerService) *AccountHandler {
	return &AccountHandler{ledgerSvc: ledgerSvc}
}

// parseAccountID reads the :id path parameter.
func parseAccountID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return 0, false
	}
	return id, true
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	encrypted, err := dto.DecodePayload(req.EncryptedBalance)
	if err != nil {
		response.Error(c, apperror.Validation("encrypted_balance must be base64"))
		return
	}

	accountID, err := h.ledgerSvc.CreateAccount(c.Request.Context(), caller, encrypted, req.AccountType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateAccountResponse{AccountID: accountID})
}

// UpdateBalance handles PUT /api/v1/accounts/:id/balance.
func (h *AccountHandler) UpdateBalance(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	encrypted, err := dto.DecodePayload(req.EncryptedBalance)
	if err != nil {
		response.Error(c, apperror.Validation("encrypted_balance must be base64"))
		return
	}

	if err := h.ledgerSvc.UpdateBalance(c.Request.Context(), caller, accountID, encrypted, req.UpdateType); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"account_id": accountID})
}

// Deactivate handles POST /api/v1/accounts/:id/deactivate.
func (h *AccountHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

// Reactivate handles POST /api/v1/accounts/:id/reactivate.
func (h *AccountHandler) Reactivate(c *gin.Context) {
	h.setActive(c, true)
}

func (h *AccountHandler) setActive(c *gin.Context, active bool) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var err error
	if active {
		err = h.ledgerSvc.ReactivateAccount(c.Request.Context(), caller, accountID)
	} else {
		err = h.ledgerSvc.DeactivateAccount(c.Request.Context(), caller, accountID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"account_id": accountID, "active": active})
}

// GetInfo handles GET /api/v1/accounts/:id.
func (h *AccountHandler) GetInfo(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	info, err := h.ledgerSvc.GetAccountInfo(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAccountInfoResponse(info))
}

// ListMine handles GET /api/v1/accounts — the caller's account ids.
func (h *AccountHandler) ListMine(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	ids, err := h.ledgerSvc.GetUserAccounts(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AccountListResponse{AccountIDs: ids})
}

// GetBalanceCommitment handles GET /api/v1/accounts/:id/balance.
func (h *AccountHandler) GetBalanceCommitment(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	commitment, err := h.ledgerSvc.GetBalanceCommitment(c.Request.Context(), caller, accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CommitmentResponse{AccountID: accountID, Commitment: commitment.Hex()})
}

// GetTransactionCommitment handles GET /api/v1/accounts/:id/transactions.
func (h *AccountHandler) GetTransactionCommitment(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	commitment, err := h.ledgerSvc.GetTransactionCommitment(c.Request.Context(), caller, accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CommitmentResponse{AccountID: accountID, Commitment: commitment.Hex()})
}

// GetLedgerInfo handles GET /api/v1/ledger.
func (h *AccountHandler) GetLedgerInfo(c *gin.Context) {
	response.OK(c, dto.LedgerInfoResponse{
		TotalAccounts: h.ledgerSvc.GetTotalAccounts(c.Request.Context()),
		Auditor:       h.ledgerSvc.GetAuditor(c.Request.Context()).String(),
	})
}

func toAccountInfoResponse(info *ports.AccountInfo) dto.AccountInfoResponse {
	return dto.AccountInfoResponse{
		ID:             info.ID,
		Owner:          info.Owner.String(),
		Active:         info.Active,
		TypeCommitment: info.TypeCommitment.Hex(),
		UpdateCount:    info.UpdateCount,
		CreatedAt:      info.CreatedAt.UTC().Format(time.RFC3339),
		LastUpdated:    info.LastUpdated.UTC().Format(time.RFC3339),
	}
}
