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

type bridgeFixture struct {
	svc       *BridgeServiceImpl
	ledger    *ledgerFixture
	transport *mocks.MockTransport
	dedup     *mocks.MockDeliveryDedup
}

// newBridgeFixture builds one ledger domain with its bridge adapter. The
// ledger fixture's minter identity doubles as the adapter account.
func newBridgeFixture(t *testing.T, domainID, tokenID string, globalRate int64) *bridgeFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	lf := newLedgerFixture(t, globalRate)
	transport := mocks.NewMockTransport(ctrl)
	dedup := mocks.NewMockDeliveryDedup(ctrl)

	return &bridgeFixture{
		svc: NewBridgeService(
			lf.svc, transport, dedup, lf.minter,
			domainID, tokenID, lf.clock, zerolog.Nop(),
		),
		ledger:    lf,
		transport: transport,
		dedup:     dedup,
	}
}

func TestLockOrBurn_UnknownRemote(t *testing.T) {
	f := newBridgeFixture(t, "dom-a", "tok-a", 0)
	ctx := context.Background()

	xfer, err := f.svc.LockOrBurn(ctx, uuid.New(), uuid.New(), 100, "dom-x")
	assertAppError(t, err, "BRG_001")
	require.NotNil(t, xfer)
	assert.Equal(t, domain.OutboundStatusRejected, xfer.Status)
}

func TestLockOrBurn_OverTransferLimit(t *testing.T) {
	f := newBridgeFixture(t, "dom-a", "tok-a", 0)
	ctx := context.Background()

	f.svc.ConfigureRemote(domain.RemoteDomain{
		DomainID:          "dom-b",
		TokenIdentity:     "tok-b",
		MaxTransferAmount: 500,
	})

	xfer, err := f.svc.LockOrBurn(ctx, uuid.New(), uuid.New(), 501, "dom-b")
	assertAppError(t, err, "BRG_002")
	assert.Equal(t, domain.OutboundStatusRejected, xfer.Status)
}

func TestLockOrBurn_EmitsPayloadWithSenderRate(t *testing.T) {
	f := newBridgeFixture(t, "dom-a", "tok-a", 900)
	ctx := context.Background()
	sender := uuid.New()
	receiver := uuid.New()

	require.NoError(t, f.ledger.svc.Issue(ctx, f.ledger.minter, sender, 1000))
	f.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-b", TokenIdentity: "tok-b"})

	var sent *domain.BridgePayload
	f.transport.EXPECT().ComputeFee(ctx, "dom-b", gomock.Any()).Return(int64(7), nil)
	f.transport.EXPECT().
		Send(ctx, "dom-b", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p *domain.BridgePayload) error {
			sent = p
			return nil
		})

	xfer, err := f.svc.LockOrBurn(ctx, sender, receiver, 400, "dom-b")
	require.NoError(t, err)
	assert.Equal(t, domain.OutboundStatusPayloadEmitted, xfer.Status)
	assert.Equal(t, int64(7), xfer.Fee)

	require.NotNil(t, sent)
	assert.Equal(t, xfer.ID, sent.Nonce)
	assert.Equal(t, "dom-a", sent.SourceDomain)
	assert.Equal(t, "dom-b", sent.DestDomain)
	assert.Equal(t, "tok-b", sent.DestToken)
	assert.Equal(t, receiver, sent.Receiver)
	assert.Equal(t, int64(400), sent.Amount)

	rate, err := domain.DecodeRateData(sent.RateData)
	require.NoError(t, err)
	assert.Equal(t, int64(900), rate, "payload must carry the sender's personal rate")

	// Burned on this side: sender debited, nothing parked on the adapter.
	senderBal, err := f.ledger.svc.BalanceOf(ctx, sender)
	require.NoError(t, err)
	assert.Equal(t, int64(600), senderBal)

	adapterBal, err := f.ledger.svc.BalanceOf(ctx, f.ledger.minter)
	require.NoError(t, err)
	assert.Zero(t, adapterBal)
}

func TestLockOrBurn_InsufficientBalance(t *testing.T) {
	f := newBridgeFixture(t, "dom-a", "tok-a", 0)
	ctx := context.Background()
	sender := uuid.New()

	require.NoError(t, f.ledger.svc.Issue(ctx, f.ledger.minter, sender, 100))
	f.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-b", TokenIdentity: "tok-b"})

	_, err := f.svc.LockOrBurn(ctx, sender, uuid.New(), 200, "dom-b")
	assertAppError(t, err, "LED_002")
}

func TestLockOrBurn_FeeFailureLeavesBalanceIntact(t *testing.T) {
	f := newBridgeFixture(t, "dom-a", "tok-a", 900)
	ctx := context.Background()
	sender := uuid.New()

	require.NoError(t, f.ledger.svc.Issue(ctx, f.ledger.minter, sender, 1000))
	f.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-b", TokenIdentity: "tok-b"})

	// No Send expectation: a transfer that cannot be priced never leaves.
	f.transport.EXPECT().
		ComputeFee(ctx, "dom-b", gomock.Any()).
		Return(int64(0), fmt.Errorf("route not quotable"))

	_, err := f.svc.LockOrBurn(ctx, sender, uuid.New(), 400, "dom-b")
	assertAppError(t, err, "SYS_001")

	balance, err := f.ledger.svc.BalanceOf(ctx, sender)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance, "nothing may be burned when the fee quote fails")
}

func TestLockOrBurn_BurnFailureReturnsEscrow(t *testing.T) {
	f := newBridgeFixture(t, "dom-a", "tok-a", 900)
	ctx := context.Background()
	sender := uuid.New()

	require.NoError(t, f.ledger.svc.Issue(ctx, f.ledger.minter, sender, 1000))
	require.NoError(t, f.ledger.svc.SetGlobalRate(ctx, f.ledger.owner, 100))
	f.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-b", TokenIdentity: "tok-b"})

	f.transport.EXPECT().ComputeFee(ctx, "dom-b", gomock.Any()).Return(int64(0), nil)

	// Without the capability the escrow transfer still succeeds but the
	// adapter's self-burn fails.
	require.NoError(t, f.ledger.svc.RevokeMintCapability(ctx, f.ledger.owner, f.ledger.minter))

	_, err := f.svc.LockOrBurn(ctx, sender, uuid.New(), 1000, "dom-b")
	assertAppError(t, err, "LED_001")

	balance, err := f.ledger.svc.BalanceOf(ctx, sender)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance, "escrow must return to the sender")

	adapterBal, err := f.ledger.svc.BalanceOf(ctx, f.ledger.minter)
	require.NoError(t, err)
	assert.Zero(t, adapterBal)

	rate, err := f.ledger.svc.PersonalRateOf(ctx, sender)
	require.NoError(t, err)
	assert.Equal(t, int64(900), rate, "the returned escrow keeps the sender's original rate")
}

func TestLockOrBurn_SendFailureCompensatesBurn(t *testing.T) {
	f := newBridgeFixture(t, "dom-a", "tok-a", 900)
	ctx := context.Background()
	sender := uuid.New()

	require.NoError(t, f.ledger.svc.Issue(ctx, f.ledger.minter, sender, 1000))
	require.NoError(t, f.ledger.svc.SetGlobalRate(ctx, f.ledger.owner, 100))
	f.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-b", TokenIdentity: "tok-b"})

	f.transport.EXPECT().ComputeFee(ctx, "dom-b", gomock.Any()).Return(int64(0), nil)
	f.transport.EXPECT().
		Send(ctx, "dom-b", gomock.Any()).
		Return(fmt.Errorf("broker unreachable"))

	_, err := f.svc.LockOrBurn(ctx, sender, uuid.New(), 1000, "dom-b")
	assertAppError(t, err, "BRG_005")

	// All-or-nothing: the burn was compensated at the sender's original rate.
	balance, err := f.ledger.svc.BalanceOf(ctx, sender)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	rate, err := f.ledger.svc.PersonalRateOf(ctx, sender)
	require.NoError(t, err)
	assert.Equal(t, int64(900), rate)
}

func TestReleaseOrMint_MintsAtTransportedRate(t *testing.T) {
	// Destination global rate is far below the transported rate.
	f := newBridgeFixture(t, "dom-b", "tok-b", 100)
	ctx := context.Background()
	receiver := uuid.New()

	f.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-a", TokenIdentity: "tok-a"})

	payload := &domain.BridgePayload{
		Nonce:        uuid.New(),
		SourceDomain: "dom-a",
		DestDomain:   "dom-b",
		DestToken:    "tok-b",
		Receiver:     receiver,
		Amount:       400,
		RateData:     domain.EncodeRateData(900),
	}

	f.dedup.EXPECT().CheckAndSet(ctx, payload.Nonce.String(), dedupTTL).Return(true, nil)

	minted, err := f.svc.ReleaseOrMint(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(400), minted)

	rate, err := f.ledger.svc.PersonalRateOf(ctx, receiver)
	require.NoError(t, err)
	assert.Equal(t, int64(900), rate, "receiver adopts the transported rate, not the local global rate")

	balance, err := f.ledger.svc.BalanceOf(ctx, receiver)
	require.NoError(t, err)
	assert.Equal(t, int64(400), balance)
}

func TestReleaseOrMint_DuplicateDelivery(t *testing.T) {
	f := newBridgeFixture(t, "dom-b", "tok-b", 100)
	ctx := context.Background()

	f.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-a", TokenIdentity: "tok-a"})

	payload := &domain.BridgePayload{
		Nonce:        uuid.New(),
		SourceDomain: "dom-a",
		DestDomain:   "dom-b",
		DestToken:    "tok-b",
		Receiver:     uuid.New(),
		Amount:       400,
		RateData:     domain.EncodeRateData(900),
	}

	f.dedup.EXPECT().CheckAndSet(ctx, payload.Nonce.String(), dedupTTL).Return(false, nil)

	_, err := f.svc.ReleaseOrMint(ctx, payload)
	assertAppError(t, err, "BRG_003")

	// Nothing minted on the duplicate.
	balance, berr := f.ledger.svc.BalanceOf(ctx, payload.Receiver)
	require.NoError(t, berr)
	assert.Zero(t, balance)
}

func TestReleaseOrMint_MintFailureAdmitsRedelivery(t *testing.T) {
	f := newBridgeFixture(t, "dom-b", "tok-b", 100)
	ctx := context.Background()
	receiver := uuid.New()

	f.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-a", TokenIdentity: "tok-a"})

	payload := &domain.BridgePayload{
		Nonce:        uuid.New(),
		SourceDomain: "dom-a",
		DestDomain:   "dom-b",
		DestToken:    "tok-b",
		Receiver:     receiver,
		Amount:       250,
		RateData:     domain.EncodeRateData(900),
	}

	// First delivery fails to mint; the nonce must be forgotten so the
	// redelivery is not rejected as a duplicate.
	require.NoError(t, f.ledger.svc.RevokeMintCapability(ctx, f.ledger.owner, f.ledger.minter))
	f.dedup.EXPECT().CheckAndSet(ctx, payload.Nonce.String(), dedupTTL).Return(true, nil)
	f.dedup.EXPECT().Forget(ctx, payload.Nonce.String()).Return(nil)

	_, err := f.svc.ReleaseOrMint(ctx, payload)
	assertAppError(t, err, "LED_001")

	balance, err := f.ledger.svc.BalanceOf(ctx, receiver)
	require.NoError(t, err)
	assert.Zero(t, balance)

	// Once the fault clears, the redelivered payload mints normally.
	require.NoError(t, f.ledger.svc.GrantMintCapability(ctx, f.ledger.owner, f.ledger.minter))
	f.dedup.EXPECT().CheckAndSet(ctx, payload.Nonce.String(), dedupTTL).Return(true, nil)

	minted, err := f.svc.ReleaseOrMint(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(250), minted)

	balance, err = f.ledger.svc.BalanceOf(ctx, receiver)
	require.NoError(t, err)
	assert.Equal(t, int64(250), balance)
}

func TestReleaseOrMint_RejectsMisroutedPayloads(t *testing.T) {
	f := newBridgeFixture(t, "dom-b", "tok-b", 100)
	ctx := context.Background()

	f.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-a", TokenIdentity: "tok-a"})

	base := domain.BridgePayload{
		Nonce:        uuid.New(),
		SourceDomain: "dom-a",
		DestDomain:   "dom-b",
		DestToken:    "tok-b",
		Receiver:     uuid.New(),
		Amount:       400,
		RateData:     domain.EncodeRateData(900),
	}

	tests := []struct {
		name   string
		mutate func(p *domain.BridgePayload)
		code   string
	}{
		{"nil amount", func(p *domain.BridgePayload) { p.Amount = 0 }, "BRG_004"},
		{"wrong dest domain", func(p *domain.BridgePayload) { p.DestDomain = "dom-c" }, "BRG_004"},
		{"wrong dest token", func(p *domain.BridgePayload) { p.DestToken = "tok-x" }, "BRG_004"},
		{"unknown source", func(p *domain.BridgePayload) { p.SourceDomain = "dom-x" }, "BRG_001"},
		{"truncated rate data", func(p *domain.BridgePayload) { p.RateData = p.RateData[:4] }, "BRG_004"},
		{"unsupported rate version", func(p *domain.BridgePayload) {
			p.RateData = append([]byte{99}, p.RateData[1:]...)
		}, "BRG_004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.RateData = append([]byte(nil), base.RateData...)
			tt.mutate(&p)

			_, err := f.svc.ReleaseOrMint(ctx, &p)
			assertAppError(t, err, tt.code)
		})
	}
}

func TestBridge_RoundTripPreservesRateAndAmount(t *testing.T) {
	source := newBridgeFixture(t, "dom-a", "tok-a", 900)
	dest := newBridgeFixture(t, "dom-b", "tok-b", 100)
	ctx := context.Background()
	sender := uuid.New()
	receiver := uuid.New()

	require.NoError(t, source.ledger.svc.Issue(ctx, source.ledger.minter, sender, 1000))

	source.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-b", TokenIdentity: "tok-b"})
	dest.svc.ConfigureRemote(domain.RemoteDomain{DomainID: "dom-a", TokenIdentity: "tok-a"})

	// Wire source's transport straight into the destination bridge.
	source.transport.EXPECT().ComputeFee(ctx, "dom-b", gomock.Any()).Return(int64(0), nil)
	source.transport.EXPECT().
		Send(ctx, "dom-b", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p *domain.BridgePayload) error {
			dest.dedup.EXPECT().CheckAndSet(ctx, p.Nonce.String(), dedupTTL).Return(true, nil)
			_, err := dest.svc.ReleaseOrMint(ctx, p)
			return err
		})

	_, err := source.svc.LockOrBurn(ctx, sender, receiver, 600, "dom-b")
	require.NoError(t, err)

	senderBal, err := source.ledger.svc.BalanceOf(ctx, sender)
	require.NoError(t, err)
	receiverBal, err := dest.ledger.svc.BalanceOf(ctx, receiver)
	require.NoError(t, err)
	assert.Equal(t, int64(400), senderBal)
	assert.Equal(t, int64(600), receiverBal)
	assert.Equal(t, int64(1000), senderBal+receiverBal, "bridging conserves total supply")

	receiverRate, err := dest.ledger.svc.PersonalRateOf(ctx, receiver)
	require.NoError(t, err)
	assert.Equal(t, int64(900), receiverRate)
}
