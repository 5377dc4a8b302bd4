package memory

import (
	"context"
	"testing"

	"github.com/maikelordaz/ccip-token/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStore_GetMissing(t *testing.T) {
	store := NewAccountStore()

	acct, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, acct)
}

func TestAccountStore_SaveAndGet(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()
	a := &domain.Account{ID: uuid.New(), Principal: 100, PersonalRate: 500}

	require.NoError(t, store.Save(ctx, a))

	got, err := store.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(100), got.Principal)
	assert.Equal(t, int64(500), got.PersonalRate)
}

func TestAccountStore_ReturnsCopies(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()
	a := &domain.Account{ID: uuid.New(), Principal: 100}
	require.NoError(t, store.Save(ctx, a))

	got, err := store.Get(ctx, a.ID)
	require.NoError(t, err)
	got.Principal = 999

	// Mutating the returned record must not leak into the store.
	again, err := store.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), again.Principal)

	// Nor must mutating the saved record after the fact.
	a.Principal = 777
	again, err = store.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), again.Principal)
}

func TestAccountStore_SaveAll(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()
	a := &domain.Account{ID: uuid.New(), Principal: 60}
	b := &domain.Account{ID: uuid.New(), Principal: 40}

	require.NoError(t, store.SaveAll(ctx, a, b))

	gotA, err := store.Get(ctx, a.ID)
	require.NoError(t, err)
	gotB, err := store.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(60), gotA.Principal)
	assert.Equal(t, int64(40), gotB.Principal)
}
