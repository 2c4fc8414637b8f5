package postgres

import (
	"context"
	"fmt"
	"library/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	lateFeesTable = "late_fee"
)

// HasUnpaidLateFees reports whether any unpaid late fee exists for the user.
func (p *PgSQL) HasUnpaidLateFees(ctx context.Context, userID domain.UserID) (bool, error) {
	var one int
	found, err := p.Builder.From(lateFeesTable).
		Select(goqu.L("1")).
		Where(
			goqu.I("user_id").Eq(int64(userID)),
			goqu.I("paid").IsFalse(),
		).
		Limit(1).
		Executor().ScanValContext(ctx, &one)
	if err != nil {
		return false, fmt.Errorf("could not check unpaid late fees in pg: %w", err)
	}

	return found, nil
}

// RecordLateFees inserts one unpaid fee per overdue record.
func (p *PgSQL) RecordLateFees(ctx context.Context, userID domain.UserID, overdue []domain.OverdueBorrowRecord) error {
	if len(overdue) == 0 {
		return nil
	}

	rows := make([]PgLateFee, len(overdue))
	for i, o := range overdue {
		rows[i] = PgLateFee{
			UserID: int64(userID),
			ItemID: int64(o.Item.ID),
			Days:   o.OverdueDays,
			Paid:   false,
		}
	}

	if _, err := p.Builder.Insert(lateFeesTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not record late fees in pg: %w", err)
	}

	return nil
}

// UserLateFees returns all late fees of the user, oldest first.
func (p *PgSQL) UserLateFees(ctx context.Context, userID domain.UserID) ([]domain.LateFee, error) {
	var rows []PgLateFee
	if err := p.Builder.From(lateFeesTable).
		Where(goqu.I("user_id").Eq(int64(userID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch late fees from pg: %w", err)
	}

	out := make([]domain.LateFee, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
