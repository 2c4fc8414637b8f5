package lending_test

import (
	"context"
	"library/internal/lending"
	"library/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCurrentLoans(t *testing.T) {
	_, st, l := newTestLending(t, newPolicy())

	st.EXPECT().CurrentBorrowRecords(gomock.Any(), userID).Return([]domain.BorrowRecord{
		record(emma, daysAgo(31)),
		record(dune, daysAgo(30)),
	}, nil)

	loans, err := l.CurrentLoans(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, []lending.Loan{
		{BorrowRecord: record(dune, daysAgo(30)), DaysHeld: 30, Overdue: false},
		{BorrowRecord: record(emma, daysAgo(31)), DaysHeld: 31, Overdue: true},
	}, loans)
}

func TestCurrentLoans_Error(t *testing.T) {
	_, st, l := newTestLending(t, newPolicy())

	st.EXPECT().CurrentBorrowRecords(gomock.Any(), userID).Return(nil, errBoom)

	_, err := l.CurrentLoans(context.Background(), userID)
	require.ErrorIs(t, err, errBoom)
}

func TestLateFees(t *testing.T) {
	_, st, l := newTestLending(t, newPolicy())

	fees := []domain.LateFee{{ID: 1, UserID: userID, ItemID: 2, Days: 32}}
	st.EXPECT().UserLateFees(gomock.Any(), userID).Return(fees, nil)

	got, err := l.LateFees(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, fees, got)

	st.EXPECT().UserLateFees(gomock.Any(), userID).Return(nil, errBoom)
	_, err = l.LateFees(context.Background(), userID)
	require.ErrorIs(t, err, errBoom)
}

func TestOrders(t *testing.T) {
	_, st, l := newTestLending(t, newPolicy())

	orders := []domain.Order{
		{ID: 1, UserID: userID, Type: domain.OrderTypeBorrow, CreatedAt: daysAgo(3), ItemIDs: []domain.ItemID{1, 2}},
		{ID: 2, UserID: userID, Type: domain.OrderTypeReturn, CreatedAt: daysAgo(1), ItemIDs: []domain.ItemID{2}},
	}
	st.EXPECT().UserOrders(gomock.Any(), userID).Return(orders, nil)

	got, err := l.Orders(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, orders, got)

	st.EXPECT().UserOrders(gomock.Any(), userID).Return(nil, errBoom)
	_, err = l.Orders(context.Background(), userID)
	require.ErrorIs(t, err, errBoom)
}
