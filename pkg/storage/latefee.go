package storage

import (
	"context"
	"library/pkg/domain"
)

// LateFeeStorage records late fees and answers whether a user still owes any.
type LateFeeStorage interface {
	// HasUnpaidLateFees reports whether the user has at least one unpaid fee.
	HasUnpaidLateFees(ctx context.Context, userID domain.UserID) (bool, error)
	// RecordLateFees stores one unpaid fee per overdue record. Fees are never
	// merged. An empty slice is a no-op.
	RecordLateFees(ctx context.Context, userID domain.UserID, overdue []domain.OverdueBorrowRecord) error
	// UserLateFees returns every fee recorded for the user, paid or not,
	// oldest first.
	UserLateFees(ctx context.Context, userID domain.UserID) ([]domain.LateFee, error)
}
