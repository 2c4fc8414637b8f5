package postgres_test

import (
	"context"
	"library/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_ItemsByIDs(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	borrow(t, pg, 7, emma.ID)

	items, err := pg.ItemsByIDs(ctx, []domain.ItemID{3, 2, 99, 1})
	require.NoError(t, err)

	borrowedEmma := emma
	borrowedEmma.Borrowed = true
	require.Equal(t, []domain.Item{dune, borrowedEmma, hyperion}, items)

	items, err = pg.ItemsByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestPgSQL_ItemsByIDs_InTx(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	items, err := tx.ItemsByIDs(ctx, []domain.ItemID{1})
	require.NoError(t, err)
	require.Equal(t, []domain.Item{dune}, items)
}
