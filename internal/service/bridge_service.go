package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maikelordaz/ccip-token/internal/core/domain"
	"github.com/maikelordaz/ccip-token/internal/core/ports"
	"github.com/maikelordaz/ccip-token/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// dedupTTL bounds how long an inbound payload nonce is remembered. The
// transport is assumed to stop redelivering well before this.
const dedupTTL = 7 * 24 * time.Hour

// BridgeServiceImpl implements ports.BridgeService.
//
// Outbound, it escrows the sender's tokens on the adapter account, burns
// them and emits a payload carrying the sender's personal rate. Inbound, it
// decodes that rate and mints with it instead of this domain's global rate,
// so a holder's rate never worsens by crossing domains.
type BridgeServiceImpl struct {
	mu      sync.RWMutex
	remotes map[string]domain.RemoteDomain

	ledger    ports.LedgerService
	transport ports.Transport
	dedup     ports.DeliveryDedup
	identity  uuid.UUID // adapter account and capability holder on the ledger
	localID   string    // this ledger domain's identifier
	localTok  string    // this domain's token identity
	clock     ports.Clock
	log       zerolog.Logger
}

// NewBridgeService creates a new BridgeServiceImpl. The identity must hold
// the minting capability on the local ledger.
func NewBridgeService(
	ledger ports.LedgerService,
	transport ports.Transport,
	dedup ports.DeliveryDedup,
	identity uuid.UUID,
	localDomain string,
	localToken string,
	clock ports.Clock,
	log zerolog.Logger,
) *BridgeServiceImpl {
	return &BridgeServiceImpl{
		remotes:   make(map[string]domain.RemoteDomain),
		ledger:    ledger,
		transport: transport,
		dedup:     dedup,
		identity:  identity,
		localID:   localDomain,
		localTok:  localToken,
		clock:     clock,
		log:       log,
	}
}

// ConfigureRemote implements ports.BridgeService.
func (s *BridgeServiceImpl) ConfigureRemote(remote domain.RemoteDomain) {
	s.mu.Lock()
	s.remotes[remote.DomainID] = remote
	s.mu.Unlock()

	s.log.Info().
		Str("domain", remote.DomainID).
		Str("remote_token", remote.TokenIdentity).
		Int64("max_transfer", remote.MaxTransferAmount).
		Msg("remote domain configured")
}

func (s *BridgeServiceImpl) remote(domainID string) (domain.RemoteDomain, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.remotes[domainID]
	return r, ok
}

// LockOrBurn implements ports.BridgeService.
//
// State machine per transfer: Validated -> Burned -> PayloadEmitted, or
// Validated -> Rejected when the allow-list check fails. Once burned the
// transfer is committed pending delivery; there is no refund path for
// payloads lost in transit.
func (s *BridgeServiceImpl) LockOrBurn(ctx context.Context, sender, receiver uuid.UUID, amount int64, destDomain string) (*domain.OutboundTransfer, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	xfer := &domain.OutboundTransfer{
		ID:         uuid.New(),
		Sender:     sender,
		Receiver:   receiver,
		Amount:     amount,
		DestDomain: destDomain,
		Status:     domain.OutboundStatusValidated,
		CreatedAt:  s.clock.Now(),
	}

	remote, ok := s.remote(destDomain)
	if !ok {
		xfer.Status = domain.OutboundStatusRejected
		s.logOutbound(xfer)
		return xfer, apperror.ErrRemoteNotConfigured(destDomain)
	}
	if remote.MaxTransferAmount > 0 && amount > remote.MaxTransferAmount {
		xfer.Status = domain.OutboundStatusRejected
		s.logOutbound(xfer)
		return xfer, apperror.ErrTransferLimitExceeded()
	}

	// The rate is read directly: realize only moves principal, never the
	// rate, so no accrual step is needed before the capture.
	rate, err := s.ledger.PersonalRateOf(ctx, sender)
	if err != nil {
		return xfer, err
	}

	payload := &domain.BridgePayload{
		Nonce:        xfer.ID,
		SourceDomain: s.localID,
		DestDomain:   destDomain,
		DestToken:    remote.TokenIdentity,
		Receiver:     receiver,
		Amount:       amount,
		RateData:     domain.EncodeRateData(rate),
	}

	// The fee is quoted before any ledger mutation; a quote failure leaves
	// the sender untouched.
	fee, err := s.transport.ComputeFee(ctx, destDomain, payload)
	if err != nil {
		return xfer, apperror.InternalError(fmt.Errorf("compute fee: %w", err))
	}
	xfer.Fee = fee

	// Escrow onto the adapter account, then burn the escrowed amount.
	if _, err := s.ledger.Transfer(ctx, sender, s.identity, amount); err != nil {
		return xfer, err
	}
	if _, err := s.ledger.Redeem(ctx, s.identity, s.identity, amount); err != nil {
		// Escrowed tokens must not strand on the adapter account; hand them
		// back before reporting the failure. An empty sender re-inherits its
		// rate from the adapter, which inherited it on the escrow transfer.
		if _, backErr := s.ledger.Transfer(ctx, s.identity, sender, amount); backErr != nil {
			s.log.Error().
				Err(backErr).
				Str("sender", sender.String()).
				Int64("amount", amount).
				Msg("escrow return failed after burn failure")
		}
		return xfer, err
	}
	xfer.Status = domain.OutboundStatusBurned

	if err := s.transport.Send(ctx, destDomain, payload); err != nil {
		// The payload never left this process; compensate the burn so the
		// call stays all-or-nothing.
		if mintErr := s.ledger.IssueAtRate(ctx, s.identity, sender, amount, rate); mintErr != nil {
			s.log.Error().
				Err(mintErr).
				Str("sender", sender.String()).
				Int64("amount", amount).
				Msg("compensating re-mint failed after transport send failure")
		}
		return xfer, apperror.ErrTransportSend(err)
	}
	xfer.Status = domain.OutboundStatusPayloadEmitted
	s.logOutbound(xfer)

	return xfer, nil
}

// ReleaseOrMint implements ports.BridgeService.
//
// The transported rate, not this domain's global rate, decides the
// zero-balance rate assignment on the destination account. That is the one
// deliberate deviation from ordinary issuance; without it a user bridging
// into a domain whose global rate has since decreased would silently lose
// their accrual advantage.
func (s *BridgeServiceImpl) ReleaseOrMint(ctx context.Context, payload *domain.BridgePayload) (int64, error) {
	if payload == nil || payload.Amount <= 0 {
		return 0, apperror.ErrMalformedPayload(fmt.Errorf("missing or non-positive amount"))
	}
	if payload.DestDomain != s.localID {
		return 0, apperror.ErrMalformedPayload(fmt.Errorf("payload for domain %s delivered to %s", payload.DestDomain, s.localID))
	}
	if payload.DestToken != s.localTok {
		return 0, apperror.ErrMalformedPayload(fmt.Errorf("payload for token %s delivered to %s", payload.DestToken, s.localTok))
	}
	if _, ok := s.remote(payload.SourceDomain); !ok {
		return 0, apperror.ErrRemoteNotConfigured(payload.SourceDomain)
	}

	rate, err := domain.DecodeRateData(payload.RateData)
	if err != nil {
		return 0, apperror.ErrMalformedPayload(err)
	}

	fresh, err := s.dedup.CheckAndSet(ctx, payload.Nonce.String(), dedupTTL)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("delivery dedup: %w", err))
	}
	if !fresh {
		return 0, apperror.ErrDuplicateDelivery()
	}

	if err := s.ledger.IssueAtRate(ctx, s.identity, payload.Receiver, payload.Amount, rate); err != nil {
		// Nothing was minted; forget the nonce so the transport's redelivery
		// is not rejected as a duplicate.
		if fErr := s.dedup.Forget(ctx, payload.Nonce.String()); fErr != nil {
			s.log.Error().
				Err(fErr).
				Str("nonce", payload.Nonce.String()).
				Msg("dedup forget failed after mint failure")
		}
		return 0, err
	}

	s.log.Info().
		Str("nonce", payload.Nonce.String()).
		Str("source_domain", payload.SourceDomain).
		Str("receiver", payload.Receiver.String()).
		Int64("amount", payload.Amount).
		Int64("rate", rate).
		Msg("inbound transfer minted")

	return payload.Amount, nil
}

func (s *BridgeServiceImpl) logOutbound(xfer *domain.OutboundTransfer) {
	s.log.Info().
		Str("transfer_id", xfer.ID.String()).
		Str("sender", xfer.Sender.String()).
		Str("dest_domain", xfer.DestDomain).
		Int64("amount", xfer.Amount).
		Str("status", string(xfer.Status)).
		Msg("outbound transfer")
}

var _ ports.BridgeService = (*BridgeServiceImpl)(nil)
