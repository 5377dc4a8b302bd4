package handler

import (
	"github.com/maikelordaz/ccip-token/internal/adapter/http/dto"
	"github.com/maikelordaz/ccip-token/internal/core/domain"
	"github.com/maikelordaz/ccip-token/internal/core/ports"
	"github.com/maikelordaz/ccip-token/pkg/apperror"
	"github.com/maikelordaz/ccip-token/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VaultHandler serves reserve deposits and withdrawals.
type VaultHandler struct {
	vaultSvc ports.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(vaultSvc ports.VaultService) *VaultHandler {
	return &VaultHandler{vaultSvc: vaultSvc}
}

// Deposit handles POST /api/v1/vault/deposit.
func (h *VaultHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	if err := h.vaultSvc.Deposit(c.Request.Context(), account, req.Value); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.BalanceResponse{AccountID: req.AccountID, Balance: req.Value})
}

// Withdraw handles POST /api/v1/vault/withdraw.
func (h *VaultHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	amount := req.Amount
	if req.All {
		amount = domain.AmountAll
	}

	released, err := h.vaultSvc.Withdraw(c.Request.Context(), account, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WithdrawResponse{AccountID: req.AccountID, Released: released})
}
