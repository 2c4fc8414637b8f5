package lending

import (
	"context"
	"fmt"
	"library/pkg/domain"
)

// Loan is a current loan as reported to the borrower.
type Loan struct {
	domain.BorrowRecord

	// DaysHeld is the number of calendar days since the loan started.
	DaysHeld int `json:"daysHeld"`
	// Overdue is set once DaysHeld exceeds MaxDaysBorrowed.
	Overdue bool `json:"overdue"`
}

// CurrentLoans lists the items the user holds, ordered by item id.
func (l *lending) CurrentLoans(ctx context.Context, userID domain.UserID) ([]Loan, error) {
	records, err := l.storage.CurrentBorrowRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get current loans: %w", err)
	}
	sortByItemID(records)

	now := l.options.Now()
	loans := make([]Loan, len(records))
	for i, record := range records {
		days := calendarDaysBetween(record.Start, now, l.options.Location)
		loans[i] = Loan{
			BorrowRecord: record,
			DaysHeld:     days,
			Overdue:      days > l.options.Policy.MaxDaysBorrowed,
		}
	}

	return loans, nil
}

// LateFees lists all late fees ever charged to the user, paid or not.
func (l *lending) LateFees(ctx context.Context, userID domain.UserID) ([]domain.LateFee, error) {
	fees, err := l.storage.UserLateFees(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get late fees: %w", err)
	}

	return fees, nil
}

// Orders lists the user's borrow and return orders, oldest first.
func (l *lending) Orders(ctx context.Context, userID domain.UserID) ([]domain.Order, error) {
	orders, err := l.storage.UserOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get orders: %w", err)
	}

	return orders, nil
}
