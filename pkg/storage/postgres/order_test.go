package postgres_test

import (
	"context"
	"library/internal/testutil/pgtest"
	"library/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_CreateOrder(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	first, err := pg.CreateOrder(ctx, 7, domain.OrderTypeBorrow)
	require.NoError(t, err)
	second, err := pg.CreateOrder(ctx, 7, domain.OrderTypeReturn)
	require.NoError(t, err)
	require.Greater(t, second, first)

	_, err = pg.CreateOrder(ctx, 7, domain.OrderType("LOST"))
	require.Error(t, err)

	require.NoError(t, pg.LinkOrderItems(ctx, first, []domain.ItemID{dune.ID, emma.ID}))
	require.NoError(t, pg.LinkOrderItems(ctx, second, nil))
	require.Equal(t, 2, pgtest.Count(t, pg, "order_to_item"))

	// unknown items are rejected by the foreign key
	require.Error(t, pg.LinkOrderItems(ctx, second, []domain.ItemID{99}))
}

func TestPgSQL_UserOrders(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	borrowID := borrow(t, pg, 7, hyperion.ID, dune.ID)
	returnID, err := pg.CreateOrder(ctx, 7, domain.OrderTypeReturn)
	require.NoError(t, err)
	require.NoError(t, pg.LinkOrderItems(ctx, returnID, []domain.ItemID{hyperion.ID}))
	borrow(t, pg, 8, emma.ID)

	orders, err := pg.UserOrders(ctx, 7)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	require.Equal(t, borrowID, orders[0].ID)
	require.Equal(t, domain.UserID(7), orders[0].UserID)
	require.Equal(t, domain.OrderTypeBorrow, orders[0].Type)
	require.Equal(t, []domain.ItemID{dune.ID, hyperion.ID}, orders[0].ItemIDs)
	require.False(t, orders[0].CreatedAt.IsZero())

	require.Equal(t, returnID, orders[1].ID)
	require.Equal(t, domain.OrderTypeReturn, orders[1].Type)
	require.Equal(t, []domain.ItemID{hyperion.ID}, orders[1].ItemIDs)

	orders, err = pg.UserOrders(ctx, 9)
	require.NoError(t, err)
	require.Empty(t, orders)
}
