package domain

import "time"

// OrderID uniquely identifies an order.
type OrderID int64

// OrderType tells whether an order borrowed or returned items.
type OrderType string

const (
	// OrderTypeBorrow is recorded when a user borrows items.
	OrderTypeBorrow OrderType = "BORROW"
	// OrderTypeReturn is recorded when a user returns items.
	OrderTypeReturn OrderType = "RETURN"
)

// Order is the immutable audit record of one borrow or return transaction.
type Order struct {
	ID        OrderID   `json:"id"`
	UserID    UserID    `json:"userId"`
	Type      OrderType `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	ItemIDs   []ItemID  `json:"itemIds"`
}
