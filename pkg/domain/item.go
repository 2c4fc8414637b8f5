package domain

// ItemID uniquely identifies a catalog item.
type ItemID int64

// ItemCategory is the category tag of a catalog item. Per-category holding
// caps are keyed by it.
type ItemCategory string

const (
	// ItemCategoryNew marks recently acquired items, usually capped more tightly.
	ItemCategoryNew ItemCategory = "NEW"
	// ItemCategoryStandard marks regular catalog items.
	ItemCategoryStandard ItemCategory = "STANDARD"
)

// Item is a catalog item as seen by the lending rules.
type Item struct {
	// ID is the unique identifier of the item.
	ID ItemID `json:"id"`
	// Category is the category tag of the item.
	Category ItemCategory `json:"category"`
	// Title is the human-readable title.
	Title string `json:"title"`
	// Borrowed reports whether a current loan exists for the item. It is
	// derived by the storage layer at query time and never stored on the item.
	Borrowed bool `json:"borrowed"`
}
