package lending

import (
	"errors"
	"library/pkg/serrors"
)

// ErrOrderFailed is the family of all rule violations. Every failure returned
// by BorrowItems or ReturnItems because of a rule carries one of the reason
// kinds below, each of which also matches ErrOrderFailed with errors.Is.
var ErrOrderFailed = serrors.NewKind("ORDER_FAILED")

// Reasons an order can fail for. Their Error() strings are the reason codes.
var (
	ErrEmptyOrder              = serrors.NewSubKind(ErrOrderFailed, "EMPTY_ORDER")
	ErrTooManyItems            = serrors.NewSubKind(ErrOrderFailed, "TOO_MANY_ITEMS")
	ErrUnpaidLateFees          = serrors.NewSubKind(ErrOrderFailed, "UNPAID_LATE_FEES")
	ErrOverdueItemsOutstanding = serrors.NewSubKind(ErrOrderFailed, "OVERDUE_ITEMS_OUTSTANDING")
	ErrItemsNotFound           = serrors.NewSubKind(ErrOrderFailed, "ITEMS_NOT_FOUND")
	ErrItemsUnavailable        = serrors.NewSubKind(ErrOrderFailed, "ITEMS_UNAVAILABLE")
	ErrTooManyHeldItems        = serrors.NewSubKind(ErrOrderFailed, "TOO_MANY_HELD_ITEMS")
	ErrCategoryLimitExceeded   = serrors.NewSubKind(ErrOrderFailed, "CATEGORY_LIMIT_EXCEEDED")
	ErrItemsNotBorrowed        = serrors.NewSubKind(ErrOrderFailed, "ITEMS_NOT_BORROWED")
)

// Reason returns the reason code of an order failure, e.g. "ITEMS_NOT_FOUND",
// or an empty string if err is not an order failure.
func Reason(err error) string {
	k := serrors.KindOf(err)
	if k == nil || !errors.Is(k, ErrOrderFailed) {
		return ""
	}

	return k.Error()
}
