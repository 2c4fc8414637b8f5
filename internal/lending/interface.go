package lending

import (
	"context"
	"library/pkg/domain"
)

// Lending enforces the borrow and return rules of the library catalog.
// Rule violations are returned as errors of the ErrOrderFailed family; any
// other error comes from the storage layer and is returned unchanged.
//
//go:generate mockgen -package mocklending -source=interface.go -destination=mock/mocklending.go *
type Lending interface {
	BorrowItems(ctx context.Context, userID domain.UserID, itemIDs []domain.ItemID) error
	ReturnItems(ctx context.Context, userID domain.UserID, itemIDs []domain.ItemID) error
	CurrentLoans(ctx context.Context, userID domain.UserID) ([]Loan, error)
	LateFees(ctx context.Context, userID domain.UserID) ([]domain.LateFee, error)
	Orders(ctx context.Context, userID domain.UserID) ([]domain.Order, error)
}
