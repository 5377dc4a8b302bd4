package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maikelordaz/ccip-token/config"
	httpHandler "github.com/maikelordaz/ccip-token/internal/adapter/http/handler"
	"github.com/maikelordaz/ccip-token/internal/adapter/reserve"
	pgStorage "github.com/maikelordaz/ccip-token/internal/adapter/storage/postgres"
	redisStorage "github.com/maikelordaz/ccip-token/internal/adapter/storage/redis"
	kafkaTransport "github.com/maikelordaz/ccip-token/internal/adapter/transport/kafka"
	"github.com/maikelordaz/ccip-token/internal/core/ports"
	"github.com/maikelordaz/ccip-token/internal/service"
	"github.com/maikelordaz/ccip-token/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("domain", cfg.Ledger.Domain).
		Int("port", cfg.Server.Port).
		Msg("Starting rate-bearing token ledger")

	owner, err := uuid.Parse(cfg.Ledger.Owner)
	if err != nil {
		log.Fatal().Err(err).Msg("ledger.owner must be a valid UUID")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	stateRepo := pgStorage.NewStateRepo(pool)
	dedupStore := redisStorage.NewDedupStore(rdb)

	// Seed the instance's global state on first boot
	if err := service.EnsureLedgerState(ctx, stateRepo, owner, cfg.Ledger.GlobalRate); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ledger state")
	}

	clock := ports.SystemClock{}
	ledgerSvc := service.NewLedgerService(accountRepo, stateRepo, clock, log)

	// Stable service identities derived from the domain name, so the
	// persisted capability set survives restarts.
	vaultID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("cct:vault:"+cfg.Ledger.Domain))
	bridgeID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("cct:bridge:"+cfg.Ledger.Domain))
	for _, id := range []uuid.UUID{vaultID, bridgeID} {
		if err := ledgerSvc.GrantMintCapability(ctx, owner, id); err != nil {
			log.Fatal().Err(err).Str("identity", id.String()).Msg("Failed to grant mint capability")
		}
	}

	// Reserve settlement + vault
	settlement := reserve.NewSettlement(
		&http.Client{Timeout: cfg.Reserve.Timeout},
		cfg.Reserve.SettlementURL,
		log,
	)
	vaultSvc := service.NewVaultService(ledgerSvc, settlement, vaultID, cfg.Ledger.TokenIdentity, log)

	// Bridge adapter over Kafka transport
	transport := kafkaTransport.NewTransport(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix, cfg.Kafka.FlatFee, log)
	defer transport.Close()

	bridgeSvc := service.NewBridgeService(
		ledgerSvc, transport, dedupStore, bridgeID,
		cfg.Ledger.Domain, cfg.Ledger.TokenIdentity, clock, log,
	)

	// Inbound consumer for this domain's topic
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()
	consumer := kafkaTransport.NewConsumer(
		cfg.Kafka.Brokers,
		transport.Topic(cfg.Ledger.Domain),
		cfg.Kafka.GroupID,
		bridgeSvc,
		log,
	)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(consumerCtx); err != nil {
			log.Error().Err(err).Msg("inbound consumer stopped")
		}
	}()

	// Admin auth services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.Admin.JWTSecret, cfg.Admin.JWTExpiry, cfg.Admin.JWTIssuer)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:         ledgerSvc,
		VaultSvc:          vaultSvc,
		BridgeSvc:         bridgeSvc,
		HashSvc:           hashSvc,
		TokenSvc:          tokenSvc,
		Owner:             owner,
		AdminPasswordHash: cfg.Admin.PasswordHash,
		HealthCheckers:    []ports.HealthChecker{pgHealth, redisHealth},
		Logger:            log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	stopConsumer()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
