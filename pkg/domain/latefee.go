package domain

import "time"

// LateFeeID uniquely identifies a late fee.
type LateFeeID int64

// LateFee is charged once per overdue item when it is returned. Fees are only
// recorded here; marking them paid belongs to an external payment process.
type LateFee struct {
	ID     LateFeeID `json:"id"`
	UserID UserID    `json:"userId"`
	// ItemID is the returned item that caused the fee.
	ItemID ItemID `json:"itemId"`
	// Days is the number of calendar days the item was held.
	Days int  `json:"days"`
	Paid bool `json:"paid"`

	CreatedAt time.Time `json:"createdAt"`
}
