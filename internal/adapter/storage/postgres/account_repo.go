package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/maikelordaz/ccip-token/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const upsertAccountSQL = `INSERT INTO accounts (id, principal, personal_rate, last_update, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			principal = EXCLUDED.principal,
			personal_rate = EXCLUDED.personal_rate,
			last_update = EXCLUDED.last_update,
			updated_at = EXCLUDED.updated_at`

// Get fetches an account by ID, returning nil if it does not exist.
func (r *AccountRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT id, principal, personal_rate, last_update, created_at, updated_at
		FROM accounts WHERE id = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Principal, &a.PersonalRate, &a.LastUpdate,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// Save upserts an account record.
func (r *AccountRepo) Save(ctx context.Context, a *domain.Account) error {
	_, err := r.pool.Exec(ctx, upsertAccountSQL,
		a.ID, a.Principal, a.PersonalRate, a.LastUpdate, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert account: %w", err)
	}
	return nil
}

// SaveAll upserts several accounts in one database transaction so a transfer
// never persists only one side of the principal move.
func (r *AccountRepo) SaveAll(ctx context.Context, accounts ...*domain.Account) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, a := range accounts {
		if _, err := tx.Exec(ctx, upsertAccountSQL,
			a.ID, a.Principal, a.PersonalRate, a.LastUpdate, a.CreatedAt, a.UpdatedAt,
		); err != nil {
			return fmt.Errorf("upsert account %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
