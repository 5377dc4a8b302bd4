package ports

import (
	"context"

	"github.com/maikelordaz/ccip-token/internal/core/domain"

	"github.com/google/uuid"
)

// AccountRepository defines persistence for ledger account records.
// Implementations are plain key-value storage; serialization of
// realize-then-mutate sequences is the ledger service's responsibility.
type AccountRepository interface {
	// Get returns the account, or nil if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	// Save upserts the account record.
	Save(ctx context.Context, account *domain.Account) error
	// SaveAll upserts several accounts atomically: either every record is
	// written or none is. Transfers depend on this to keep the
	// conservation invariant under storage failures.
	SaveAll(ctx context.Context, accounts ...*domain.Account) error
}

// LedgerStateRepository defines persistence for the per-instance global state.
type LedgerStateRepository interface {
	// Load returns the ledger state, or nil if the instance is uninitialized.
	Load(ctx context.Context) (*domain.LedgerState, error)
	// Save writes the ledger state.
	Save(ctx context.Context, state *domain.LedgerState) error
}
