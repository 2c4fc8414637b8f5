package lending

import (
	"cmp"
	"library/pkg/domain"
	"library/pkg/serrors"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// uniqueItemIDs drops repeated ids, keeping the first occurrence order.
func uniqueItemIDs(ids []domain.ItemID) []domain.ItemID {
	seen := make(map[domain.ItemID]struct{}, len(ids))
	out := make([]domain.ItemID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// sortByItemID orders records by ascending item id so that "the first overdue
// item" does not depend on the store's row order.
func sortByItemID(records []domain.BorrowRecord) {
	slices.SortStableFunc(records, func(a, b domain.BorrowRecord) int {
		return cmp.Compare(a.Item.ID, b.Item.ID)
	})
}

func formatItemIDs(ids []domain.ItemID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// missingItemIDs returns the requested ids that are not among items, in
// request order.
func missingItemIDs(requested []domain.ItemID, items []domain.Item) []domain.ItemID {
	existing := make(map[domain.ItemID]struct{}, len(items))
	for _, item := range items {
		existing[item.ID] = struct{}{}
	}

	var missing []domain.ItemID
	for _, id := range requested {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}

func (l *lending) validateItemCountInOrder(count int) error {
	if count <= 0 {
		return serrors.With(ErrEmptyOrder, "empty order")
	}
	if count > l.options.Policy.MaxItemCountInOrder {
		return serrors.With(ErrTooManyItems,
			"can only borrow %d items at a time", l.options.Policy.MaxItemCountInOrder)
	}

	return nil
}

func (l *lending) validateNoOverdueBorrowRecords(records []domain.BorrowRecord, now time.Time) error {
	overdue := l.overdueBorrowRecords(records, now)
	if len(overdue) == 0 {
		return nil
	}

	first := overdue[0]

	return serrors.With(ErrOverdueItemsOutstanding,
		"item %d (%s) is late by %d days", first.Item.ID, first.Item.Title, first.OverdueDays)
}

func validateAllItemIDsExist(requested []domain.ItemID, items []domain.Item) error {
	if missing := missingItemIDs(requested, items); len(missing) > 0 {
		return serrors.With(ErrItemsNotFound, "item ids do not exist: %s", formatItemIDs(missing))
	}

	return nil
}

// validateItemsAreBorrowed applies the same set difference as
// validateAllItemIDsExist, against the user's current loans.
func validateItemsAreBorrowed(requested []domain.ItemID, records []domain.BorrowRecord) error {
	if missing := missingItemIDs(requested, domain.BorrowedItems(records)); len(missing) > 0 {
		return serrors.With(ErrItemsNotBorrowed, "item ids not borrowed: %s", formatItemIDs(missing))
	}

	return nil
}

func validateAllItemsAvailable(items []domain.Item) error {
	var titles []string
	for _, item := range items {
		if item.Borrowed {
			titles = append(titles, item.Title)
		}
	}
	if len(titles) > 0 {
		return serrors.With(ErrItemsUnavailable,
			"items not available to borrow: [%s]", strings.Join(titles, ", "))
	}

	return nil
}

// validateBorrowedItemLimits checks the items the user would hold after the
// order, i.e. current loans plus newly requested items, against the total and
// per-category caps.
func (l *lending) validateBorrowedItemLimits(records []domain.BorrowRecord, newItems []domain.Item) error {
	held := append(domain.BorrowedItems(records), newItems...)

	policy := l.options.Policy
	if len(held) > policy.MaxBorrowedItemCount {
		return serrors.With(ErrTooManyHeldItems,
			"you can only hold %d items at the same time", policy.MaxBorrowedItemCount)
	}

	perCategory := make(map[domain.ItemCategory]int)
	for _, item := range held {
		perCategory[item.Category]++
	}
	for _, category := range slices.Sorted(maps.Keys(perCategory)) {
		if limit := policy.CategoryCap(category); perCategory[category] > limit {
			return serrors.With(ErrCategoryLimitExceeded,
				"you can only hold %d items of category %s at the same time", limit, category)
		}
	}

	return nil
}
