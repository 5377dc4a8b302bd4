package memory

import (
	"context"
	"sync"

	"github.com/maikelordaz/ccip-token/internal/core/domain"

	"github.com/google/uuid"
)

// StateStore is an in-memory ports.LedgerStateRepository.
type StateStore struct {
	mu    sync.RWMutex
	state *domain.LedgerState
}

// NewStateStore creates an empty in-memory ledger state store.
func NewStateStore() *StateStore {
	return &StateStore{}
}

// Load returns a deep copy of the state, or nil if uninitialized.
func (s *StateStore) Load(_ context.Context) (*domain.LedgerState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil, nil
	}
	cp := *s.state
	cp.Minters = make(map[uuid.UUID]bool, len(s.state.Minters))
	for id, ok := range s.state.Minters {
		cp.Minters[id] = ok
	}
	return &cp, nil
}

// Save writes the ledger state.
func (s *StateStore) Save(_ context.Context, state *domain.LedgerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *state
	cp.Minters = make(map[uuid.UUID]bool, len(state.Minters))
	for id, ok := range state.Minters {
		cp.Minters[id] = ok
	}
	s.state = &cp
	return nil
}
