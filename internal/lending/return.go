package lending

import (
	"context"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/serrors"
	"library/pkg/storage"

	"go.uber.org/zap"
)

// ReturnItems ends the user's loans of the given items. Every item must be
// currently borrowed by the user; otherwise nothing is written. A late fee is
// recorded for each returned item that was held longer than MaxDaysBorrowed.
// Returns are never refused because of overdue items or unpaid fees.
func (l *lending) ReturnItems(ctx context.Context, userID domain.UserID, itemIDs []domain.ItemID) error {
	return l.observe(ctx, domain.OrderTypeReturn, userID, itemIDs, func(ctx context.Context) error {
		return l.giveBack(ctx, userID, uniqueItemIDs(itemIDs))
	})
}

func (l *lending) giveBack(ctx context.Context, userID domain.UserID, itemIDs []domain.ItemID) error {
	// returns are not capped by MaxItemCountInOrder
	if len(itemIDs) == 0 {
		return serrors.With(ErrEmptyOrder, "empty order")
	}

	var (
		orderID domain.OrderID
		overdue []domain.OverdueBorrowRecord
	)
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.LockUser(ctx, userID); err != nil {
			return err
		}

		records, err := tx.CurrentBorrowRecordsByItemIDs(ctx, userID, itemIDs)
		if err != nil {
			return err
		}
		if err := validateItemsAreBorrowed(itemIDs, records); err != nil {
			return err
		}

		sortByItemID(records)
		overdue = l.overdueBorrowRecords(records, l.options.Now())
		if len(overdue) > 0 {
			if err := tx.RecordLateFees(ctx, userID, overdue); err != nil {
				return err
			}
		}

		orderID, err = tx.CreateOrder(ctx, userID, domain.OrderTypeReturn)
		if err != nil {
			return err
		}
		if err := tx.LinkOrderItems(ctx, orderID, itemIDs); err != nil {
			return err
		}

		return tx.DeleteCurrentLoans(ctx, itemIDs)
	}); err != nil {
		return err
	}

	logger.Info(ctx, "items returned",
		zap.Int64("orderID", int64(orderID)),
		zap.Int("lateFees", len(overdue)))

	return nil
}
