package postgres_test

import (
	"context"
	"library/internal/testutil/pgtest"
	"library/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_LateFees(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	unpaid, err := pg.HasUnpaidLateFees(ctx, 7)
	require.NoError(t, err)
	require.False(t, unpaid)

	require.NoError(t, pg.RecordLateFees(ctx, 7, nil))
	require.NoError(t, pg.RecordLateFees(ctx, 7, []domain.OverdueBorrowRecord{
		{Item: emma, OverdueDays: 32},
		{Item: dune, OverdueDays: 40},
	}))

	unpaid, err = pg.HasUnpaidLateFees(ctx, 7)
	require.NoError(t, err)
	require.True(t, unpaid)

	unpaid, err = pg.HasUnpaidLateFees(ctx, 8)
	require.NoError(t, err)
	require.False(t, unpaid)

	fees, err := pg.UserLateFees(ctx, 7)
	require.NoError(t, err)
	require.Len(t, fees, 2)
	require.Equal(t, emma.ID, fees[0].ItemID)
	require.Equal(t, 32, fees[0].Days)
	require.False(t, fees[0].Paid)
	require.Equal(t, domain.UserID(7), fees[0].UserID)
	require.NotZero(t, fees[0].ID)
	require.False(t, fees[0].CreatedAt.IsZero())
	require.Equal(t, dune.ID, fees[1].ItemID)

	// fees settled by the payment process no longer block
	_, err = pgtest.DB(pg).ExecContext(ctx, `UPDATE late_fee SET paid = TRUE WHERE user_id = 7`)
	require.NoError(t, err)
	unpaid, err = pg.HasUnpaidLateFees(ctx, 7)
	require.NoError(t, err)
	require.False(t, unpaid)
}
