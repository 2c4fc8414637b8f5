package postgres

import (
	"context"
	"errors"
	"fmt"
	"library/pkg/domain"
	"library/pkg/serrors"
	"library/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// borrowRecords builds the query joining current loans with their items and
// the order that created them, ordered by item id.
func (p *PgSQL) borrowRecords(where ...exp.Expression) *goqu.SelectDataset {
	ds := p.Builder.From(goqu.T(currentLoansTable).As("cbi")).
		InnerJoin(goqu.T(itemsTable).As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("cbi.item_id")))).
		InnerJoin(goqu.T(ordersTable).As("o"), goqu.On(goqu.I("o.id").Eq(goqu.I("cbi.order_id")))).
		Select(
			goqu.I("i.id"),
			goqu.I("i.category"),
			goqu.I("i.title"),
			goqu.I("o.created_at").As("start"),
		).
		Where(where...).
		Order(goqu.I("i.id").Asc())
	if p.inTx() {
		ds = ds.ForUpdate(exp.Wait, goqu.T("cbi"))
	}

	return ds
}

// LockUser takes a transaction scoped advisory lock keyed by the user id. It
// is held until commit or rollback.
func (p *PgSQL) LockUser(ctx context.Context, userID domain.UserID) error {
	if !p.inTx() {
		return storage.ErrNotInTx
	}

	if _, err := p.Builder.Select(goqu.Func("pg_advisory_xact_lock", int64(userID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not lock user in pg: %w", err)
	}

	return nil
}

// CurrentBorrowRecords returns all current loans of the user ordered by item id.
func (p *PgSQL) CurrentBorrowRecords(ctx context.Context, userID domain.UserID) ([]domain.BorrowRecord, error) {
	var rows []PgBorrowRecord
	if err := p.borrowRecords(goqu.I("cbi.user_id").Eq(int64(userID))).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch current borrow records from pg: %w", err)
	}

	return pgBorrowRecordsToDomain(rows), nil
}

// CurrentBorrowRecordsByItemIDs returns the user's current loans restricted to
// the given items, ordered by item id.
func (p *PgSQL) CurrentBorrowRecordsByItemIDs(ctx context.Context,
	userID domain.UserID,
	itemIDs []domain.ItemID) ([]domain.BorrowRecord, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	var rows []PgBorrowRecord
	if err := p.borrowRecords(
		goqu.I("cbi.user_id").Eq(int64(userID)),
		goqu.I("cbi.item_id").In(itemIDsToPg(itemIDs)),
	).Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch current borrow records by item ids from pg: %w", err)
	}

	return pgBorrowRecordsToDomain(rows), nil
}

// CreateCurrentLoans inserts one current loan per item. The item id is the
// primary key of the table, so an item that is already lent makes the insert
// fail with storage.ErrItemAlreadyBorrowed.
func (p *PgSQL) CreateCurrentLoans(ctx context.Context,
	itemIDs []domain.ItemID,
	userID domain.UserID,
	orderID domain.OrderID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	rows := make([]PgCurrentLoan, len(itemIDs))
	for i, id := range itemIDs {
		rows[i] = PgCurrentLoan{
			ItemID:  int64(id),
			UserID:  int64(userID),
			OrderID: int64(orderID),
		}
	}

	if _, err := p.Builder.Insert(currentLoansTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return serrors.Wrap(storage.ErrItemAlreadyBorrowed, err, "could not create current loans")
		}

		return fmt.Errorf("could not create current loans in pg: %w", err)
	}

	return nil
}

// DeleteCurrentLoans removes the current loans of the given items.
func (p *PgSQL) DeleteCurrentLoans(ctx context.Context, itemIDs []domain.ItemID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	if _, err := p.Builder.Delete(currentLoansTable).
		Where(goqu.I("item_id").In(itemIDsToPg(itemIDs))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete current loans in pg: %w", err)
	}

	return nil
}
