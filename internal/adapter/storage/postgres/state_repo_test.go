package postgres

import (
	"context"
	"testing"

	"github.com/maikelordaz/ccip-token/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepo_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)
	owner := uuid.New()
	minter := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM ledger_state WHERE id").
		WillReturnRows(pgxmock.NewRows([]string{"global_rate", "owner", "minters"}).
			AddRow(int64(500), owner, []string{minter.String()}))

	st, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, int64(500), st.GlobalRate)
	assert.Equal(t, owner, st.Owner)
	assert.True(t, st.IsMinter(minter))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Load_Uninitialized(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM ledger_state WHERE id").
		WillReturnRows(pgxmock.NewRows([]string{"global_rate", "owner", "minters"}))

	st, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, st, "uninitialized state is nil, not an error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Load_BadMinter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM ledger_state WHERE id").
		WillReturnRows(pgxmock.NewRows([]string{"global_rate", "owner", "minters"}).
			AddRow(int64(0), uuid.New(), []string{"not-a-uuid"}))

	_, err = repo.Load(context.Background())
	assert.Error(t, err)
}

func TestStateRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)
	minter := uuid.New()
	st := &domain.LedgerState{
		GlobalRate: 400,
		Owner:      uuid.New(),
		Minters:    map[uuid.UUID]bool{minter: true},
	}

	mock.ExpectExec("INSERT INTO ledger_state").
		WithArgs(st.GlobalRate, st.Owner, []string{minter.String()}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Save(context.Background(), st)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
