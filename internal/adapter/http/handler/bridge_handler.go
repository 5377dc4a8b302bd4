package handler

import (
	"github.com/maikelordaz/ccip-token/internal/adapter/http/dto"
	"github.com/maikelordaz/ccip-token/internal/core/ports"
	"github.com/maikelordaz/ccip-token/pkg/apperror"
	"github.com/maikelordaz/ccip-token/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BridgeHandler serves outbound cross-domain transfers.
type BridgeHandler struct {
	bridgeSvc ports.BridgeService
}

// NewBridgeHandler creates a new BridgeHandler.
func NewBridgeHandler(bridgeSvc ports.BridgeService) *BridgeHandler {
	return &BridgeHandler{bridgeSvc: bridgeSvc}
}

// Outbound handles POST /api/v1/bridge/outbound.
func (h *BridgeHandler) Outbound(c *gin.Context) {
	var req dto.OutboundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sender, err := uuid.Parse(req.Sender)
	if err != nil {
		response.Error(c, apperror.Validation("invalid sender account id"))
		return
	}
	receiver, err := uuid.Parse(req.Receiver)
	if err != nil {
		response.Error(c, apperror.Validation("invalid receiver account id"))
		return
	}

	xfer, err := h.bridgeSvc.LockOrBurn(c.Request.Context(), sender, receiver, req.Amount, req.DestDomain)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, xfer)
}
