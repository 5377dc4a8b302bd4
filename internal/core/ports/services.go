package ports

import (
	"context"
	"time"

	"github.com/maikelordaz/ccip-token/internal/core/domain"

	"github.com/google/uuid"
)

// LedgerService is the interest-accrual ledger: one serially consistent state
// machine per instance. All mutating operations realize accrued interest
// before touching principal, and every privileged call is checked against the
// caller's capability.
type LedgerService interface {
	// Issue mints amount to account at the current global rate (for empty
	// accounts). Requires the minting capability.
	Issue(ctx context.Context, caller, account uuid.UUID, amount int64) error
	// IssueAtRate mints amount to account using an explicit rate for the
	// zero-balance rate assignment instead of the global rate. This is the
	// rate-override mint the bridge and the vault's compensating re-mint
	// depend on. Requires the minting capability.
	IssueAtRate(ctx context.Context, caller, account uuid.UUID, amount, rate int64) error
	// Redeem burns amount from account; domain.AmountAll burns the full live
	// balance. Returns the amount actually burned. Requires the minting
	// capability.
	Redeem(ctx context.Context, caller, account uuid.UUID, amount int64) (int64, error)
	// RedeemCapture burns like Redeem and additionally returns the account's
	// personal rate, read under the same lock as the burn. Callers that
	// compensate a failed downstream step re-mint at exactly this rate.
	RedeemCapture(ctx context.Context, caller, account uuid.UUID, amount int64) (int64, int64, error)
	// Transfer moves amount from one account to another; domain.AmountAll
	// moves the sender's full live balance. Returns the amount moved.
	Transfer(ctx context.Context, from, to uuid.UUID, amount int64) (int64, error)

	// BalanceOf returns the live balance (principal plus accrued interest).
	BalanceOf(ctx context.Context, account uuid.UUID) (int64, error)
	// PrincipalOf returns realized principal only.
	PrincipalOf(ctx context.Context, account uuid.UUID) (int64, error)
	// PersonalRateOf returns the account's fixed personal rate.
	PersonalRateOf(ctx context.Context, account uuid.UUID) (int64, error)
	// GlobalRate returns the instance's current global rate.
	GlobalRate(ctx context.Context) (int64, error)

	// SetGlobalRate lowers the global rate. Owner only; the new rate must be
	// strictly below the current one.
	SetGlobalRate(ctx context.Context, caller uuid.UUID, newRate int64) error
	// GrantMintCapability / RevokeMintCapability manage the minter set. Owner only.
	GrantMintCapability(ctx context.Context, caller, account uuid.UUID) error
	RevokeMintCapability(ctx context.Context, caller, account uuid.UUID) error
}

// VaultService escrows base-asset reserve value against ledger tokens 1:1.
type VaultService interface {
	Deposit(ctx context.Context, caller uuid.UUID, value int64) error
	// Withdraw burns tokens and releases the underlying reserve. Returns the
	// amount released; domain.AmountAll withdraws the full live balance.
	Withdraw(ctx context.Context, caller uuid.UUID, amount int64) (int64, error)
	// LedgerAddress returns the bound ledger's identity.
	LedgerAddress() string
}

// BridgeService wraps the ledger for cross-domain transfers.
type BridgeService interface {
	// LockOrBurn burns amount on this domain and emits a payload carrying the
	// sender's personal rate toward destDomain.
	LockOrBurn(ctx context.Context, sender, receiver uuid.UUID, amount int64, destDomain string) (*domain.OutboundTransfer, error)
	// ReleaseOrMint consumes an inbound payload and mints on this domain
	// using the transported rate. Returns the minted amount.
	ReleaseOrMint(ctx context.Context, payload *domain.BridgePayload) (int64, error)
	// ConfigureRemote installs or replaces the allow-list entry for a remote
	// domain. Administration of this surface is external.
	ConfigureRemote(remote domain.RemoteDomain)
}

// ReserveAsset is the base-asset value interface the vault releases through.
// Incoming value is implicit (settlement happens outside this process);
// Send failures are observable and must abort the withdrawal.
type ReserveAsset interface {
	Send(ctx context.Context, recipient uuid.UUID, amount int64) error
}

// Transport is the external messaging collaborator the bridge emits through.
// Fee computation and delivery guarantees belong to the transport, not the core.
type Transport interface {
	ComputeFee(ctx context.Context, destDomain string, payload *domain.BridgePayload) (int64, error)
	Send(ctx context.Context, destDomain string, payload *domain.BridgePayload) error
}

// DeliveryDedup admits each inbound payload nonce exactly once.
type DeliveryDedup interface {
	// CheckAndSet atomically records the nonce. Returns true if the nonce is
	// new, false if it was already consumed.
	CheckAndSet(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
	// Forget removes a recorded nonce so a later redelivery is admitted
	// again. Used when the delivery failed after the nonce was recorded.
	Forget(ctx context.Context, nonce string) error
}

// TokenService handles admin JWT operations.
type TokenService interface {
	Generate(subject uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (uuid.UUID, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}
