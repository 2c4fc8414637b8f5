package postgres

import (
	"context"
	"fmt"
	"library/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	itemsTable        = "item"
	currentLoansTable = "currently_borrowed_item"
)

// ItemsByIDs returns the requested items ordered by id. The borrowed flag is
// computed from a left join on current loans. Inside a transaction the item
// rows are locked FOR UPDATE so concurrent borrowers of the same item are
// serialized.
func (p *PgSQL) ItemsByIDs(ctx context.Context, ids []domain.ItemID) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ds := p.Builder.From(goqu.T(itemsTable).As("i")).
		LeftJoin(
			goqu.T(currentLoansTable).As("cbi"),
			goqu.On(goqu.I("cbi.item_id").Eq(goqu.I("i.id"))),
		).
		Select(
			goqu.I("i.id"),
			goqu.I("i.category"),
			goqu.I("i.title"),
			goqu.L("cbi.item_id IS NOT NULL").As("borrowed"),
		).
		Where(goqu.I("i.id").In(itemIDsToPg(ids))).
		Order(goqu.I("i.id").Asc())
	// the nullable side of an outer join cannot be locked, only the item rows are.
	if p.inTx() {
		ds = ds.ForUpdate(exp.Wait, goqu.T("i"))
	}

	var rows []PgItem
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch items by ids from pg: %w", err)
	}

	return pgItemsToDomain(rows), nil
}
