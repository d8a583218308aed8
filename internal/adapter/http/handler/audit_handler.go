package handler

import (
	"strconv"
	"time"

	"confidential-ledger/internal/adapter/http/dto"
	"confidential-ledger/internal/adapter/http/middleware"
	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"
	"confidential-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditHandler handles audit lifecycle and auditor role endpoints.
type AuditHandler struct {
	ledgerSvc ports.LedgerService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(ledgerSvc ports.LedgerService) *AuditHandler {
	return &AuditHandler{ledgerSvc: ledgerSvc}
}

func parseAuditID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid audit id"))
		return 0, false
	}
	return id, true
}

// Initiate handles POST /api/v1/audits.
func (h *AuditHandler) Initiate(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.InitiateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	auditID, err := h.ledgerSvc.InitiateAudit(c.Request.Context(), caller, req.AccountID, req.AuditType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.InitiateAuditResponse{AuditID: auditID})
}

// Complete handles POST /api/v1/audits/:id/complete.
func (h *AuditHandler) Complete(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	auditID, ok := parseAuditID(c)
	if !ok {
		return
	}

	var req dto.CompleteAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	encrypted, err := dto.DecodePayload(req.EncryptedFlag)
	if err != nil {
		response.Error(c, apperror.Validation("encrypted_flag must be base64"))
		return
	}

	if err := h.ledgerSvc.CompleteAudit(c.Request.Context(), caller, auditID, encrypted); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"audit_id": auditID, "completed": true})
}

// GetRecord handles GET /api/v1/audits/:id.
func (h *AuditHandler) GetRecord(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	auditID, ok := parseAuditID(c)
	if !ok {
		return
	}

	record, err := h.ledgerSvc.GetAuditRecord(c.Request.Context(), caller, auditID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toAuditRecordResponse(record))
}

// GetFlag handles GET /api/v1/audits/:id/flag.
func (h *AuditHandler) GetFlag(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	auditID, ok := parseAuditID(c)
	if !ok {
		return
	}

	commitment, err := h.ledgerSvc.GetAuditFlag(c.Request.Context(), caller, auditID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CommitmentResponse{AuditID: auditID, Commitment: commitment.Hex()})
}

// ListForAccount handles GET /api/v1/accounts/:id/audits.
func (h *AuditHandler) ListForAccount(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	ids, err := h.ledgerSvc.GetAccountAudits(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AuditListResponse{AccountID: accountID, AuditIDs: ids})
}

// TransferAuditor handles POST /api/v1/auditor/transfer.
func (h *AuditHandler) TransferAuditor(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferAuditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	newAuditor, err := uuid.Parse(req.NewAuditor)
	if err != nil {
		response.Error(c, apperror.Validation("new_auditor must be a UUID"))
		return
	}

	if err := h.ledgerSvc.TransferAuditor(c.Request.Context(), caller, newAuditor); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"auditor": newAuditor.String()})
}

func toAuditRecordResponse(record *domain.AuditRecord) dto.AuditRecordResponse {
	resp := dto.AuditRecordResponse{
		ID:              record.ID,
		Ref:             record.Ref.Hex(),
		AccountID:       record.AccountID,
		BalanceSnapshot: record.BalanceSnapshot.Hex(),
		Discrepancy:     record.Discrepancy.Hex(),
		TypeCommitment:  record.TypeCommitment.Hex(),
		Completed:       record.Completed,
		InitiatedAt:     record.InitiatedAt.UTC().Format(time.RFC3339),
	}
	if record.CompletedAt != nil {
		completedAt := record.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}
	return resp
}
