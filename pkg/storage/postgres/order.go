package postgres

import (
	"context"
	"fmt"
	"library/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	ordersTable     = "user_order"
	orderItemsTable = "order_to_item"
)

// CreateOrder inserts an order and returns its generated id. created_at is
// filled by the database.
func (p *PgSQL) CreateOrder(ctx context.Context, userID domain.UserID, orderType domain.OrderType) (domain.OrderID, error) {
	var id int64
	found, err := p.Builder.Insert(ordersTable).
		Rows(goqu.Record{
			"user_id": int64(userID),
			"type":    string(orderType),
		}).
		Returning(goqu.I("id")).
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return 0, fmt.Errorf("could not create order in pg: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("could not create order in pg: no id returned")
	}

	return domain.OrderID(id), nil
}

// LinkOrderItems inserts one order_to_item row per item.
func (p *PgSQL) LinkOrderItems(ctx context.Context, orderID domain.OrderID, itemIDs []domain.ItemID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	rows := make([]PgOrderItem, len(itemIDs))
	for i, id := range itemIDs {
		rows[i] = PgOrderItem{OrderID: int64(orderID), ItemID: int64(id)}
	}

	if _, err := p.Builder.Insert(orderItemsTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not link order items in pg: %w", err)
	}

	return nil
}

// UserOrders loads the user's orders and then their items in a second query.
func (p *PgSQL) UserOrders(ctx context.Context, userID domain.UserID) ([]domain.Order, error) {
	var rows []PgOrder
	if err := p.Builder.From(ordersTable).
		Where(goqu.C("user_id").Eq(int64(userID))).
		Order(goqu.C("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch orders from pg: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	orderIDs := make([]int64, len(rows))
	for i := range rows {
		orderIDs[i] = rows[i].ID
	}

	var links []PgOrderItem
	if err := p.Builder.From(orderItemsTable).
		Where(goqu.C("order_id").In(orderIDs)).
		Order(goqu.C("order_id").Asc(), goqu.C("item_id").Asc()).
		Executor().ScanStructsContext(ctx, &links); err != nil {
		return nil, fmt.Errorf("could not fetch order items from pg: %w", err)
	}

	itemIDs := make(map[int64][]domain.ItemID, len(rows))
	for _, link := range links {
		itemIDs[link.OrderID] = append(itemIDs[link.OrderID], domain.ItemID(link.ItemID))
	}

	orders := make([]domain.Order, len(rows))
	for i := range rows {
		orders[i] = rows[i].ToDomain(itemIDs[rows[i].ID])
	}

	return orders, nil
}
