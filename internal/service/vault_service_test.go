package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/maikelordaz/ccip-token/internal/core/domain"
	"github.com/maikelordaz/ccip-token/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type vaultFixture struct {
	svc     *VaultServiceImpl
	ledger  *ledgerFixture
	reserve *mocks.MockReserveAsset
	ctrl    *gomock.Controller
}

func newVaultFixture(t *testing.T, globalRate int64) *vaultFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	lf := newLedgerFixture(t, globalRate)
	reserve := mocks.NewMockReserveAsset(ctrl)

	// The vault reuses the ledger fixture's minter identity as its own.
	return &vaultFixture{
		svc:     NewVaultService(lf.svc, reserve, lf.minter, "cct-local", zerolog.Nop()),
		ledger:  lf,
		reserve: reserve,
		ctrl:    ctrl,
	}
}

func TestVaultDeposit_MintsAtGlobalRate(t *testing.T) {
	f := newVaultFixture(t, 500)
	ctx := context.Background()
	account := uuid.New()

	require.NoError(t, f.svc.Deposit(ctx, account, 1000))

	balance, err := f.ledger.svc.BalanceOf(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	rate, err := f.ledger.svc.PersonalRateOf(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, int64(500), rate)
}

func TestVaultDeposit_InvalidValue(t *testing.T) {
	f := newVaultFixture(t, 0)
	ctx := context.Background()

	assertAppError(t, f.svc.Deposit(ctx, uuid.New(), 0), "LED_005")
	assertAppError(t, f.svc.Deposit(ctx, uuid.New(), -10), "LED_005")
}

func TestVaultWithdraw_BurnsThenReleases(t *testing.T) {
	f := newVaultFixture(t, 0)
	ctx := context.Background()
	account := uuid.New()

	require.NoError(t, f.svc.Deposit(ctx, account, 1000))
	f.reserve.EXPECT().Send(ctx, account, int64(400)).Return(nil)

	released, err := f.svc.Withdraw(ctx, account, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(400), released)

	balance, err := f.ledger.svc.BalanceOf(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, int64(600), balance)
}

func TestVaultWithdraw_AllIncludesAccruedInterest(t *testing.T) {
	f := newVaultFixture(t, 1e10)
	ctx := context.Background()
	account := uuid.New()

	require.NoError(t, f.svc.Deposit(ctx, account, 1000))
	f.ledger.clock.advanceSeconds(1e8) // live balance doubles

	f.reserve.EXPECT().Send(ctx, account, int64(2000)).Return(nil)

	released, err := f.svc.Withdraw(ctx, account, domain.AmountAll)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), released)
}

func TestVaultWithdraw_EmptyAccountAllIsNoop(t *testing.T) {
	f := newVaultFixture(t, 0)
	ctx := context.Background()

	// No Send expectation: nothing was burned, nothing is released.
	released, err := f.svc.Withdraw(ctx, uuid.New(), domain.AmountAll)
	require.NoError(t, err)
	assert.Zero(t, released)
}

func TestVaultWithdraw_ReleaseFailureRestoresBalanceAndRate(t *testing.T) {
	f := newVaultFixture(t, 500)
	ctx := context.Background()
	account := uuid.New()

	require.NoError(t, f.svc.Deposit(ctx, account, 1000)) // rate fixed at 500

	// The global rate drops after the deposit. A failed release must restore
	// the account at its original rate, not the current global one.
	require.NoError(t, f.ledger.svc.SetGlobalRate(ctx, f.ledger.owner, 100))

	f.reserve.EXPECT().
		Send(ctx, account, int64(1000)).
		Return(fmt.Errorf("settlement endpoint unreachable"))

	_, err := f.svc.Withdraw(ctx, account, domain.AmountAll)
	assertAppError(t, err, "VLT_001")

	balance, err := f.ledger.svc.BalanceOf(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance, "burn must be compensated")

	rate, err := f.ledger.svc.PersonalRateOf(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, int64(500), rate, "compensating re-mint must restore the pre-burn rate")
}

func TestVaultWithdraw_InvalidAmount(t *testing.T) {
	f := newVaultFixture(t, 0)
	ctx := context.Background()

	_, err := f.svc.Withdraw(ctx, uuid.New(), 0)
	assertAppError(t, err, "LED_005")

	_, err = f.svc.Withdraw(ctx, uuid.New(), -7)
	assertAppError(t, err, "LED_005")
}

func TestVaultLedgerAddress(t *testing.T) {
	f := newVaultFixture(t, 0)
	assert.Equal(t, "cct-local", f.svc.LedgerAddress())
}
