package handler

import (
	"time"

	"github.com/maikelordaz/ccip-token/internal/adapter/http/dto"
	"github.com/maikelordaz/ccip-token/internal/adapter/http/middleware"
	"github.com/maikelordaz/ccip-token/internal/core/domain"
	"github.com/maikelordaz/ccip-token/internal/core/ports"
	"github.com/maikelordaz/ccip-token/pkg/apperror"
	"github.com/maikelordaz/ccip-token/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the administrative capability surface: login, global
// rate updates, minter grants and remote domain allow-list entries.
type AdminHandler struct {
	ledgerSvc    ports.LedgerService
	bridgeSvc    ports.BridgeService
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	owner        uuid.UUID
	passwordHash string
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	ledgerSvc ports.LedgerService,
	bridgeSvc ports.BridgeService,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	owner uuid.UUID,
	passwordHash string,
) *AdminHandler {
	return &AdminHandler{
		ledgerSvc:    ledgerSvc,
		bridgeSvc:    bridgeSvc,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		owner:        owner,
		passwordHash: passwordHash,
	}
}

// Login handles POST /api/v1/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ok, err := h.hashSvc.Verify(req.Password, h.passwordHash)
	if err != nil || !ok {
		response.Error(c, apperror.ErrInvalidCredentials())
		return
	}

	token, expiresAt, err := h.tokenSvc.Generate(h.owner)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// SetGlobalRate handles PUT /api/v1/admin/rate.
func (h *AdminHandler) SetGlobalRate(c *gin.Context) {
	caller, ok := middleware.AdminID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.SetGlobalRate(c.Request.Context(), caller, *req.Rate); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"global_rate": *req.Rate})
}

// GrantMinter handles POST /api/v1/admin/minters/:id.
func (h *AdminHandler) GrantMinter(c *gin.Context) {
	h.setMinter(c, true)
}

// RevokeMinter handles DELETE /api/v1/admin/minters/:id.
func (h *AdminHandler) RevokeMinter(c *gin.Context) {
	h.setMinter(c, false)
}

func (h *AdminHandler) setMinter(c *gin.Context, grant bool) {
	caller, ok := middleware.AdminID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	account, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	if grant {
		err = h.ledgerSvc.GrantMintCapability(c.Request.Context(), caller, account)
	} else {
		err = h.ledgerSvc.RevokeMintCapability(c.Request.Context(), caller, account)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"account_id": account.String(), "minter": grant})
}

// ConfigureRemote handles PUT /api/v1/admin/remotes/:domain.
func (h *AdminHandler) ConfigureRemote(c *gin.Context) {
	if _, ok := middleware.AdminID(c); !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RemoteDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	remote := domain.RemoteDomain{
		DomainID:          c.Param("domain"),
		AdapterIdentity:   req.AdapterIdentity,
		TokenIdentity:     req.TokenIdentity,
		MaxTransferAmount: req.MaxTransferAmount,
	}
	h.bridgeSvc.ConfigureRemote(remote)
	response.OK(c, remote)
}
