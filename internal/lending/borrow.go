package lending

import (
	"context"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/serrors"
	"library/pkg/storage"

	"go.uber.org/zap"
)

// BorrowItems lends the given items to the user if every rule holds. The
// rules are checked in a fixed order and the first violation is returned:
//
//   - the order is not empty and not larger than MaxItemCountInOrder
//   - the user has no unpaid late fees
//   - none of the user's current loans is overdue
//   - every item exists
//   - no item is currently borrowed
//   - the user would hold at most MaxBorrowedItemCount items and at most the
//     category cap of each category
//
// Repeated ids count once, so MaxItemCountInOrder caps distinct items. Orders
// of the same user are serialized. Nothing is written unless all rules pass.
func (l *lending) BorrowItems(ctx context.Context, userID domain.UserID, itemIDs []domain.ItemID) error {
	return l.observe(ctx, domain.OrderTypeBorrow, userID, itemIDs, func(ctx context.Context) error {
		return l.borrow(ctx, userID, uniqueItemIDs(itemIDs))
	})
}

func (l *lending) borrow(ctx context.Context, userID domain.UserID, itemIDs []domain.ItemID) error {
	if err := l.validateItemCountInOrder(len(itemIDs)); err != nil {
		return err
	}

	var orderID domain.OrderID
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		// limits are checked against loans committed by earlier orders of the user
		if err := tx.LockUser(ctx, userID); err != nil {
			return err
		}

		unpaid, err := tx.HasUnpaidLateFees(ctx, userID)
		if err != nil {
			return err
		}
		if unpaid {
			return serrors.With(ErrUnpaidLateFees, "you have unpaid late fees")
		}

		records, err := tx.CurrentBorrowRecords(ctx, userID)
		if err != nil {
			return err
		}
		sortByItemID(records)
		if err := l.validateNoOverdueBorrowRecords(records, l.options.Now()); err != nil {
			return err
		}

		items, err := tx.ItemsByIDs(ctx, itemIDs)
		if err != nil {
			return err
		}
		if err := validateAllItemIDsExist(itemIDs, items); err != nil {
			return err
		}
		if err := validateAllItemsAvailable(items); err != nil {
			return err
		}
		if err := l.validateBorrowedItemLimits(records, items); err != nil {
			return err
		}

		orderID, err = tx.CreateOrder(ctx, userID, domain.OrderTypeBorrow)
		if err != nil {
			return err
		}
		if err := tx.LinkOrderItems(ctx, orderID, itemIDs); err != nil {
			return err
		}

		return tx.CreateCurrentLoans(ctx, itemIDs, userID, orderID)
	}); err != nil {
		return err
	}

	logger.Info(ctx, "items borrowed", zap.Int64("orderID", int64(orderID)))

	return nil
}
