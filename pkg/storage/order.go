package storage

import (
	"context"
	"library/pkg/domain"
)

// OrderStorage persists the audit trail of borrow and return orders.
type OrderStorage interface {
	// CreateOrder inserts a new order of the given type for the user and
	// returns its id. The creation timestamp is assigned by the store.
	CreateOrder(ctx context.Context, userID domain.UserID, orderType domain.OrderType) (domain.OrderID, error)
	// LinkOrderItems records which items an order refers to.
	LinkOrderItems(ctx context.Context, orderID domain.OrderID, itemIDs []domain.ItemID) error
	// UserOrders returns the user's orders, oldest first, each with its item
	// ids in ascending order.
	UserOrders(ctx context.Context, userID domain.UserID) ([]domain.Order, error)
}
