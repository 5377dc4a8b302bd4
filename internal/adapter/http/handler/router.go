package handler

import (
	"github.com/maikelordaz/ccip-token/internal/adapter/http/middleware"
	"github.com/maikelordaz/ccip-token/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc         ports.LedgerService
	VaultSvc          ports.VaultService
	BridgeSvc         ports.BridgeService
	HashSvc           ports.HashService
	TokenSvc          ports.TokenService
	Owner             uuid.UUID
	AdminPasswordHash string
	HealthCheckers    []ports.HealthChecker
	Logger            zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/healthz", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	vaultHandler := NewVaultHandler(deps.VaultSvc)
	bridgeHandler := NewBridgeHandler(deps.BridgeSvc)

	accounts := v1.Group("/accounts")
	{
		accounts.GET("/:id/balance", ledgerHandler.GetBalance)
		accounts.GET("/:id/principal", ledgerHandler.GetPrincipal)
		accounts.GET("/:id/rate", ledgerHandler.GetRate)
	}

	v1.POST("/transfer", ledgerHandler.Transfer)

	vault := v1.Group("/vault")
	{
		vault.POST("/deposit", vaultHandler.Deposit)
		vault.POST("/withdraw", vaultHandler.Withdraw)
	}

	v1.POST("/bridge/outbound", bridgeHandler.Outbound)

	// --- Admin routes (JWT-authenticated) ---
	adminHandler := NewAdminHandler(
		deps.LedgerSvc, deps.BridgeSvc, deps.HashSvc, deps.TokenSvc,
		deps.Owner, deps.AdminPasswordHash,
	)
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	v1.POST("/admin/login", adminHandler.Login)
	admin := v1.Group("/admin", jwtAuth)
	{
		admin.PUT("/rate", adminHandler.SetGlobalRate)
		admin.POST("/minters/:id", adminHandler.GrantMinter)
		admin.DELETE("/minters/:id", adminHandler.RevokeMinter)
		admin.PUT("/remotes/:domain", adminHandler.ConfigureRemote)
	}

	return r
}
