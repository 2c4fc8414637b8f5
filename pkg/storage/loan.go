package storage

import (
	"context"
	"library/pkg/domain"
)

// LoanStorage manages current loans, i.e. which user holds which item under
// which order.
type LoanStorage interface {
	// LockUser serializes lending transactions of the user until the current
	// transaction ends. It fails with ErrNotInTx outside a transaction.
	LockUser(ctx context.Context, userID domain.UserID) error
	// CurrentBorrowRecords returns all current loans of the user ordered by item
	// id. Record.Start is the creation time of the borrowing order.
	CurrentBorrowRecords(ctx context.Context, userID domain.UserID) ([]domain.BorrowRecord, error)
	// CurrentBorrowRecordsByItemIDs is like CurrentBorrowRecords but only
	// returns loans of the given items.
	CurrentBorrowRecordsByItemIDs(ctx context.Context,
		userID domain.UserID,
		itemIDs []domain.ItemID) ([]domain.BorrowRecord, error)
	// CreateCurrentLoans records that the user holds the given items under the
	// given order. It fails with ErrItemAlreadyBorrowed if any of the items
	// already has a current loan.
	CreateCurrentLoans(ctx context.Context, itemIDs []domain.ItemID, userID domain.UserID, orderID domain.OrderID) error
	// DeleteCurrentLoans removes the current loans of the given items.
	DeleteCurrentLoans(ctx context.Context, itemIDs []domain.ItemID) error
}
