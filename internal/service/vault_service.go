package service

import (
	"context"

	"github.com/maikelordaz/ccip-token/internal/core/domain"
	"github.com/maikelordaz/ccip-token/internal/core/ports"
	"github.com/maikelordaz/ccip-token/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VaultServiceImpl implements ports.VaultService: it escrows base-asset
// reserve value and issues ledger tokens 1:1 against it at the current
// global rate.
type VaultServiceImpl struct {
	ledger     ports.LedgerService
	reserve    ports.ReserveAsset
	identity   uuid.UUID // capability holder on the ledger
	ledgerAddr string
	log        zerolog.Logger
}

// NewVaultService creates a new VaultServiceImpl. The identity must hold the
// minting capability on the bound ledger.
func NewVaultService(
	ledger ports.LedgerService,
	reserve ports.ReserveAsset,
	identity uuid.UUID,
	ledgerAddr string,
	log zerolog.Logger,
) *VaultServiceImpl {
	return &VaultServiceImpl{
		ledger:     ledger,
		reserve:    reserve,
		identity:   identity,
		ledgerAddr: ledgerAddr,
		log:        log,
	}
}

// Deposit implements ports.VaultService. Incoming reserve value is settled
// externally; the vault mints tokens 1:1 against the deposited value.
func (s *VaultServiceImpl) Deposit(ctx context.Context, caller uuid.UUID, value int64) error {
	if value <= 0 {
		return apperror.ErrInvalidAmount()
	}

	if err := s.ledger.Issue(ctx, s.identity, caller, value); err != nil {
		return err
	}

	s.log.Info().
		Str("account", caller.String()).
		Int64("value", value).
		Msg("deposit accepted")

	return nil
}

// Withdraw implements ports.VaultService.
//
// Ordering matters for reentrancy: the burn completes before the external
// release, so a re-entering caller can never observe a stale pre-burn
// balance. A failed release compensates the burn with a rate-override
// re-mint at the pre-burn personal rate; leaving tokens burned with no
// payout is not an acceptable outcome.
func (s *VaultServiceImpl) Withdraw(ctx context.Context, caller uuid.UUID, amount int64) (int64, error) {
	if amount <= 0 && amount != domain.AmountAll {
		return 0, apperror.ErrInvalidAmount()
	}

	// The rate rides along with the burn under one ledger lock; the
	// compensating re-mint must restore this exact rate, not the global one.
	burned, rate, err := s.ledger.RedeemCapture(ctx, s.identity, caller, amount)
	if err != nil {
		return 0, err
	}
	if burned == 0 {
		return 0, nil
	}

	if err := s.reserve.Send(ctx, caller, burned); err != nil {
		if mintErr := s.ledger.IssueAtRate(ctx, s.identity, caller, burned, rate); mintErr != nil {
			// Compensation failing means the burn is stranded; loud log, the
			// caller still sees the release failure.
			s.log.Error().
				Err(mintErr).
				Str("account", caller.String()).
				Int64("amount", burned).
				Msg("compensating re-mint failed after release failure")
		}
		return 0, apperror.ErrReleaseFailed(err)
	}

	s.log.Info().
		Str("account", caller.String()).
		Int64("amount", burned).
		Msg("withdrawal released")

	return burned, nil
}

// LedgerAddress implements ports.VaultService.
func (s *VaultServiceImpl) LedgerAddress() string {
	return s.ledgerAddr
}

var _ ports.VaultService = (*VaultServiceImpl)(nil)
