package lending

import (
	"library/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniqueItemIDs(t *testing.T) {
	require.Equal(t, []domain.ItemID{3, 1, 2}, uniqueItemIDs([]domain.ItemID{3, 1, 3, 2, 1}))
	require.Empty(t, uniqueItemIDs(nil))
}

func TestFormatItemIDs(t *testing.T) {
	require.Equal(t, "[]", formatItemIDs(nil))
	require.Equal(t, "[7]", formatItemIDs([]domain.ItemID{7}))
	require.Equal(t, "[1, 2, 30]", formatItemIDs([]domain.ItemID{1, 2, 30}))
}

func TestMissingItemIDs(t *testing.T) {
	items := []domain.Item{{ID: 2}, {ID: 4}}

	require.Equal(t, []domain.ItemID{5, 1}, missingItemIDs([]domain.ItemID{5, 2, 1, 4}, items))
	require.Empty(t, missingItemIDs([]domain.ItemID{4, 2}, items))
}

func TestValidateBorrowedItemLimits_CategoriesInSortedOrder(t *testing.T) {
	l := &lending{options: Options{Policy: Policy{
		MaxItemCountInOrder:  5,
		MaxBorrowedItemCount: 10,
		CategoryCaps:         map[domain.ItemCategory]int{"B": 0, "A": 0},
	}}}

	err := l.validateBorrowedItemLimits(nil, []domain.Item{{ID: 1, Category: "B"}, {ID: 2, Category: "A"}})
	require.ErrorIs(t, err, ErrCategoryLimitExceeded)
	require.Contains(t, err.Error(), "category A")
}

func TestValidateBorrowedItemLimits_ExactlyAtLimit(t *testing.T) {
	l := &lending{options: Options{Policy: Policy{
		MaxItemCountInOrder:  5,
		MaxBorrowedItemCount: 2,
		CategoryCaps:         map[domain.ItemCategory]int{domain.ItemCategoryNew: 2},
	}}}

	held := []domain.BorrowRecord{{Item: domain.Item{ID: 1, Category: domain.ItemCategoryNew}}}
	require.NoError(t, l.validateBorrowedItemLimits(held, []domain.Item{{ID: 2, Category: domain.ItemCategoryNew}}))
}
