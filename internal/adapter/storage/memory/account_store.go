package memory

import (
	"context"
	"sync"

	"github.com/maikelordaz/ccip-token/internal/core/domain"

	"github.com/google/uuid"
)

// AccountStore is an in-memory ports.AccountRepository. Used in tests and
// single-process deployments without PostgreSQL.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]domain.Account
}

// NewAccountStore creates an empty in-memory account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[uuid.UUID]domain.Account)}
}

// Get returns a copy of the account, or nil if absent.
func (s *AccountStore) Get(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &acct, nil
}

// Save upserts the account record.
func (s *AccountStore) Save(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = *account
	return nil
}

// SaveAll upserts several accounts under one lock acquisition.
func (s *AccountStore) SaveAll(_ context.Context, accounts ...*domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range accounts {
		s.accounts[acct.ID] = *acct
	}
	return nil
}
