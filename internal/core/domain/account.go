package domain

import (
	"time"

	"github.com/google/uuid"
)

// RatePrecision is the fixed-point scale for interest rates: a rate of
// RatePrecision means 100% growth per second of elapsed time per unit of
// principal. Rates are stored as integers scaled by this factor.
const RatePrecision int64 = 1e18

// AmountAll is the sentinel amount meaning "the account's full live balance".
// Negative amounts are rejected everywhere else, so the sentinel cannot
// collide with a legal amount.
const AmountAll int64 = -1

// Account is one holder's record on a single ledger instance.
//
// Principal excludes unrealized interest; the live balance is derived from
// Principal, PersonalRate and the time elapsed since LastUpdate. PersonalRate
// is fixed when tokens first arrive into an empty account and is replaced
// only while the balance is zero.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Principal    int64     `json:"principal"`
	PersonalRate int64     `json:"personal_rate"`
	LastUpdate   int64     `json:"last_update"` // unix seconds of last accrual realization
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LedgerState is the per-instance global state.
//
// GlobalRate only ever decreases over the ledger's lifetime; the single
// mutation point enforces the invariant. Minters is the set of identities
// holding the minting capability.
type LedgerState struct {
	GlobalRate int64              `json:"global_rate"`
	Owner      uuid.UUID          `json:"owner"`
	Minters    map[uuid.UUID]bool `json:"minters"`
}

// IsMinter reports whether id holds the minting capability.
func (s *LedgerState) IsMinter(id uuid.UUID) bool {
	return s.Minters[id]
}
