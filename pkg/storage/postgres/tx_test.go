package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"library/internal/testutil/pgtest"
	"library/pkg/domain"
	"library/pkg/storage"
	"library/pkg/storage/postgres"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.CreateOrder(ctx, 1, domain.OrderTypeBorrow)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.Equal(t, 0, pgtest.Count(t, pg, "user_order"))

	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.CreateOrder(ctx, 1, domain.OrderTypeBorrow)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.Equal(t, 1, pgtest.Count(t, pg, "user_order"))
}

func TestPgSQL_WithTx(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.CreateOrder(ctx, 1, domain.OrderTypeBorrow)

		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, pgtest.Count(t, pg, "user_order"))

	// the callback error is returned as is and nothing is kept
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.CreateOrder(ctx, 1, domain.OrderTypeReturn); err != nil {
			return err
		}

		return errBoom
	})
	require.Equal(t, errBoom, err)
	require.Equal(t, 1, pgtest.Count(t, pg, "user_order"))

	require.PanicsWithValue(t, "boom", func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, _ = s.CreateOrder(ctx, 1, domain.OrderTypeReturn)

			panic("boom")
		})
	})
	require.Equal(t, 1, pgtest.Count(t, pg, "user_order"))
}

func TestPgSQL_WithTx_CommitError(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	borrow(t, pg, 7, dune.ID)

	// the failed insert aborts the tx, so the commit turns into a rollback
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_ = s.CreateCurrentLoans(ctx, []domain.ItemID{dune.ID}, 8, 1)

		return nil
	})
	require.ErrorIs(t, err, pgx.ErrTxCommitRollback)
	require.Equal(t, 1, strings.Count(err.Error(), "could not commit tx"))
	require.Equal(t, 1, pgtest.Count(t, pg, "currently_borrowed_item"))
}
