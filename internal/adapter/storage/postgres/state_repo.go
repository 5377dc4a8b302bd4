package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/maikelordaz/ccip-token/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StateRepo implements ports.LedgerStateRepository. The state lives in a
// single row; minters are stored as a text[] of UUID strings.
type StateRepo struct {
	pool Pool
}

// NewStateRepo creates a new StateRepo.
func NewStateRepo(pool Pool) *StateRepo {
	return &StateRepo{pool: pool}
}

// Load fetches the ledger state, returning nil if uninitialized.
func (r *StateRepo) Load(ctx context.Context) (*domain.LedgerState, error) {
	query := `SELECT global_rate, owner, minters FROM ledger_state WHERE id = 1`

	var (
		st      domain.LedgerState
		minters []string
	)
	err := r.pool.QueryRow(ctx, query).Scan(&st.GlobalRate, &st.Owner, &minters)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load ledger state: %w", err)
	}

	st.Minters = make(map[uuid.UUID]bool, len(minters))
	for _, m := range minters {
		id, err := uuid.Parse(m)
		if err != nil {
			return nil, fmt.Errorf("parse minter %q: %w", m, err)
		}
		st.Minters[id] = true
	}
	return &st, nil
}

// Save writes the ledger state.
func (r *StateRepo) Save(ctx context.Context, st *domain.LedgerState) error {
	query := `INSERT INTO ledger_state (id, global_rate, owner, minters)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			global_rate = EXCLUDED.global_rate,
			owner = EXCLUDED.owner,
			minters = EXCLUDED.minters`

	minters := make([]string, 0, len(st.Minters))
	for id := range st.Minters {
		minters = append(minters, id.String())
	}

	_, err := r.pool.Exec(ctx, query, st.GlobalRate, st.Owner, minters)
	if err != nil {
		return fmt.Errorf("save ledger state: %w", err)
	}
	return nil
}
