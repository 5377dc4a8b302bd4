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

// LedgerHandler serves account reads and transfers.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// GetBalance handles GET /api/v1/accounts/:id/balance.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}
	balance, err := h.ledgerSvc.BalanceOf(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{AccountID: id.String(), Balance: balance})
}

// GetPrincipal handles GET /api/v1/accounts/:id/principal.
func (h *LedgerHandler) GetPrincipal(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}
	principal, err := h.ledgerSvc.PrincipalOf(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PrincipalResponse{AccountID: id.String(), Principal: principal})
}

// GetRate handles GET /api/v1/accounts/:id/rate.
func (h *LedgerHandler) GetRate(c *gin.Context) {
	id, ok := accountParam(c)
	if !ok {
		return
	}
	rate, err := h.ledgerSvc.PersonalRateOf(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RateResponse{AccountID: id.String(), PersonalRate: rate})
}

// Transfer handles POST /api/v1/transfer.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	from, err := uuid.Parse(req.From)
	if err != nil {
		response.Error(c, apperror.Validation("invalid sender account id"))
		return
	}
	to, err := uuid.Parse(req.To)
	if err != nil {
		response.Error(c, apperror.Validation("invalid recipient account id"))
		return
	}

	amount := req.Amount
	if req.All {
		amount = domain.AmountAll
	}

	moved, err := h.ledgerSvc.Transfer(c.Request.Context(), from, to, amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.TransferResponse{From: req.From, To: req.To, Amount: moved})
}

func accountParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return uuid.Nil, false
	}
	return id, true
}
