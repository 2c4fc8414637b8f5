package domain

import "time"

// BorrowRecord is an active loan: an item currently held by a user.
// It exists for exactly as long as the item is borrowed.
type BorrowRecord struct {
	// Item is the borrowed item.
	Item Item `json:"item"`
	// Start is the creation time of the BORROW order that started the loan.
	Start time.Time `json:"start"`
}

// OverdueBorrowRecord pairs a borrowed item with the number of calendar days
// it has been held. It is computed on demand and never persisted as such.
type OverdueBorrowRecord struct {
	Item        Item `json:"item"`
	OverdueDays int  `json:"overdueDays"`
}

// BorrowedItems returns the items of the given records in order.
func BorrowedItems(records []BorrowRecord) []Item {
	items := make([]Item, len(records))
	for i := range records {
		items[i] = records[i].Item
	}

	return items
}
