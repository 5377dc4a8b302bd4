package service

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/maikelordaz/ccip-token/internal/core/domain"
	"github.com/maikelordaz/ccip-token/internal/core/ports"
	"github.com/maikelordaz/ccip-token/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService.
//
// One instance is one serially consistent state machine: a single mutex
// guarantees that realize-then-mutate sequences are observed as one unit.
// No operation blocks on I/O beyond the storage round-trips done under the
// lock; any operation may fail synchronously but never suspends.
type LedgerServiceImpl struct {
	mu       sync.Mutex
	accounts ports.AccountRepository
	state    ports.LedgerStateRepository
	clock    ports.Clock
	log      zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accounts ports.AccountRepository,
	state ports.LedgerStateRepository,
	clock ports.Clock,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accounts: accounts,
		state:    state,
		clock:    clock,
		log:      log,
	}
}

// EnsureLedgerState initializes the instance's global state on first boot.
// Existing state is left untouched.
func EnsureLedgerState(ctx context.Context, repo ports.LedgerStateRepository, owner uuid.UUID, globalRate int64) error {
	st, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger state: %w", err)
	}
	if st != nil {
		return nil
	}
	return repo.Save(ctx, &domain.LedgerState{
		GlobalRate: globalRate,
		Owner:      owner,
		Minters:    make(map[uuid.UUID]bool),
	})
}

// Issue implements ports.LedgerService.
func (s *LedgerServiceImpl) Issue(ctx context.Context, caller, account uuid.UUID, amount int64) error {
	return s.issue(ctx, caller, account, amount, nil)
}

// IssueAtRate implements ports.LedgerService.
func (s *LedgerServiceImpl) IssueAtRate(ctx context.Context, caller, account uuid.UUID, amount, rate int64) error {
	if rate < 0 {
		return apperror.Validation("rate must be non-negative")
	}
	return s.issue(ctx, caller, account, amount, &rate)
}

// issue realizes accrued interest, assigns the rate if the account is empty
// (global rate by default, the override when the bridge or vault supplies
// one), then adds amount to principal.
func (s *LedgerServiceImpl) issue(ctx context.Context, caller, account uuid.UUID, amount int64, rateOverride *int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadState(ctx)
	if err != nil {
		return err
	}
	if !st.IsMinter(caller) {
		return apperror.ErrUnauthorized()
	}

	acct, err := s.getOrCreate(ctx, account)
	if err != nil {
		return err
	}
	if err := s.realize(acct); err != nil {
		return err
	}

	if acct.Principal == 0 {
		if rateOverride != nil {
			acct.PersonalRate = *rateOverride
		} else {
			acct.PersonalRate = st.GlobalRate
		}
	}

	if acct.Principal > math.MaxInt64-amount {
		return apperror.ErrArithmeticOverflow()
	}
	acct.Principal += amount

	if err := s.accounts.Save(ctx, acct); err != nil {
		return apperror.InternalError(fmt.Errorf("save account: %w", err))
	}

	s.log.Info().
		Str("account", account.String()).
		Int64("amount", amount).
		Int64("personal_rate", acct.PersonalRate).
		Bool("rate_override", rateOverride != nil).
		Msg("tokens issued")

	return nil
}

// Redeem implements ports.LedgerService.
func (s *LedgerServiceImpl) Redeem(ctx context.Context, caller, account uuid.UUID, amount int64) (int64, error) {
	burned, _, err := s.redeem(ctx, caller, account, amount)
	return burned, err
}

// RedeemCapture implements ports.LedgerService. Reading the rate under the
// burn's lock closes the window where an interleaved empty-and-reissue could
// change it between a separate rate read and the burn.
func (s *LedgerServiceImpl) RedeemCapture(ctx context.Context, caller, account uuid.UUID, amount int64) (int64, int64, error) {
	return s.redeem(ctx, caller, account, amount)
}

func (s *LedgerServiceImpl) redeem(ctx context.Context, caller, account uuid.UUID, amount int64) (int64, int64, error) {
	if amount <= 0 && amount != domain.AmountAll {
		return 0, 0, apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadState(ctx)
	if err != nil {
		return 0, 0, err
	}
	if !st.IsMinter(caller) {
		return 0, 0, apperror.ErrUnauthorized()
	}

	acct, err := s.getOrCreate(ctx, account)
	if err != nil {
		return 0, 0, err
	}
	if err := s.realize(acct); err != nil {
		return 0, 0, err
	}

	// After realize the live balance equals principal.
	if amount == domain.AmountAll {
		amount = acct.Principal
	}
	if amount > acct.Principal {
		return 0, 0, apperror.ErrInsufficientBalance()
	}
	acct.Principal -= amount

	if err := s.accounts.Save(ctx, acct); err != nil {
		return 0, 0, apperror.InternalError(fmt.Errorf("save account: %w", err))
	}

	s.log.Info().
		Str("account", account.String()).
		Int64("amount", amount).
		Int64("remaining_principal", acct.Principal).
		Msg("tokens redeemed")

	// Burning does not touch the rate; an emptied account keeps it until the
	// next mint-to-empty reassigns it.
	return amount, acct.PersonalRate, nil
}

// Transfer implements ports.LedgerService. Both parties are realized before
// the principal move, so the move itself conserves total principal exactly.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, from, to uuid.UUID, amount int64) (int64, error) {
	if amount <= 0 && amount != domain.AmountAll {
		return 0, apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sender, err := s.getOrCreate(ctx, from)
	if err != nil {
		return 0, err
	}
	if err := s.realize(sender); err != nil {
		return 0, err
	}

	if amount == domain.AmountAll {
		amount = sender.Principal
	}
	if amount > sender.Principal {
		return 0, apperror.ErrInsufficientBalance()
	}

	if from == to {
		// Self-transfer degenerates to a realize.
		if err := s.accounts.Save(ctx, sender); err != nil {
			return 0, apperror.InternalError(fmt.Errorf("save account: %w", err))
		}
		return amount, nil
	}

	recipient, err := s.getOrCreate(ctx, to)
	if err != nil {
		return 0, err
	}
	if err := s.realize(recipient); err != nil {
		return 0, err
	}

	// Rate inheritance: an empty recipient adopts the sender's rate.
	if recipient.Principal == 0 {
		recipient.PersonalRate = sender.PersonalRate
	}
	if recipient.Principal > math.MaxInt64-amount {
		return 0, apperror.ErrArithmeticOverflow()
	}
	sender.Principal -= amount
	recipient.Principal += amount

	if err := s.accounts.SaveAll(ctx, sender, recipient); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("save accounts: %w", err))
	}

	s.log.Info().
		Str("from", from.String()).
		Str("to", to.String()).
		Int64("amount", amount).
		Int64("recipient_rate", recipient.PersonalRate).
		Msg("tokens transferred")

	return amount, nil
}

// BalanceOf implements ports.LedgerService. Pure read: the accrual clock is
// not reset.
func (s *LedgerServiceImpl) BalanceOf(ctx context.Context, account uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.accounts.Get(ctx, account)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if acct == nil {
		return 0, nil
	}
	return liveBalance(acct.Principal, acct.PersonalRate, s.elapsed(acct))
}

// PrincipalOf implements ports.LedgerService.
func (s *LedgerServiceImpl) PrincipalOf(ctx context.Context, account uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.accounts.Get(ctx, account)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if acct == nil {
		return 0, nil
	}
	return acct.Principal, nil
}

// PersonalRateOf implements ports.LedgerService.
func (s *LedgerServiceImpl) PersonalRateOf(ctx context.Context, account uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.accounts.Get(ctx, account)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if acct == nil {
		return 0, nil
	}
	return acct.PersonalRate, nil
}

// GlobalRate implements ports.LedgerService.
func (s *LedgerServiceImpl) GlobalRate(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadState(ctx)
	if err != nil {
		return 0, err
	}
	return st.GlobalRate, nil
}

// SetGlobalRate implements ports.LedgerService. The compare at the single
// mutation point enforces that the global rate is non-increasing for the
// lifetime of the instance.
func (s *LedgerServiceImpl) SetGlobalRate(ctx context.Context, caller uuid.UUID, newRate int64) error {
	if newRate < 0 {
		return apperror.Validation("rate must be non-negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadState(ctx)
	if err != nil {
		return err
	}
	if caller != st.Owner {
		return apperror.ErrUnauthorized()
	}
	if newRate >= st.GlobalRate {
		return apperror.ErrRateCanOnlyDecrease()
	}

	oldRate := st.GlobalRate
	st.GlobalRate = newRate
	if err := s.state.Save(ctx, st); err != nil {
		return apperror.InternalError(fmt.Errorf("save ledger state: %w", err))
	}

	s.log.Info().
		Int64("old_rate", oldRate).
		Int64("new_rate", newRate).
		Msg("global rate decreased")

	return nil
}

// GrantMintCapability implements ports.LedgerService.
func (s *LedgerServiceImpl) GrantMintCapability(ctx context.Context, caller, account uuid.UUID) error {
	return s.setMinter(ctx, caller, account, true)
}

// RevokeMintCapability implements ports.LedgerService.
func (s *LedgerServiceImpl) RevokeMintCapability(ctx context.Context, caller, account uuid.UUID) error {
	return s.setMinter(ctx, caller, account, false)
}

func (s *LedgerServiceImpl) setMinter(ctx context.Context, caller, account uuid.UUID, granted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadState(ctx)
	if err != nil {
		return err
	}
	if caller != st.Owner {
		return apperror.ErrUnauthorized()
	}

	if granted {
		st.Minters[account] = true
	} else {
		delete(st.Minters, account)
	}
	if err := s.state.Save(ctx, st); err != nil {
		return apperror.InternalError(fmt.Errorf("save ledger state: %w", err))
	}

	s.log.Info().
		Str("account", account.String()).
		Bool("granted", granted).
		Msg("mint capability changed")

	return nil
}

// realize folds accrued interest into principal and resets the accrual
// clock. Idempotent at zero elapsed; never decreases principal. Must run
// before any step that reads or mutates principal. The caller persists the
// account afterwards.
func (s *LedgerServiceImpl) realize(acct *domain.Account) error {
	now := s.clock.Now()
	live, err := liveBalance(acct.Principal, acct.PersonalRate, now.Unix()-acct.LastUpdate)
	if err != nil {
		return err
	}
	if live > acct.Principal {
		acct.Principal = live
	}
	acct.LastUpdate = now.Unix()
	acct.UpdatedAt = now
	return nil
}

func (s *LedgerServiceImpl) elapsed(acct *domain.Account) int64 {
	return s.clock.Now().Unix() - acct.LastUpdate
}

func (s *LedgerServiceImpl) loadState(ctx context.Context) (*domain.LedgerState, error) {
	st, err := s.state.Load(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load ledger state: %w", err))
	}
	if st == nil {
		return nil, apperror.InternalError(fmt.Errorf("ledger state not initialized"))
	}
	if st.Minters == nil {
		st.Minters = make(map[uuid.UUID]bool)
	}
	return st, nil
}

func (s *LedgerServiceImpl) getOrCreate(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acct, err := s.accounts.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if acct == nil {
		now := s.clock.Now()
		acct = &domain.Account{
			ID:         id,
			LastUpdate: now.Unix(),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}
	return acct, nil
}

var _ ports.LedgerService = (*LedgerServiceImpl)(nil)
