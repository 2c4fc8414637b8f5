package postgres

import (
	"library/pkg/domain"
	"time"
)

// PgItem is an item row joined with its derived borrowed flag.
type PgItem struct {
	ID       int64  `db:"id"`
	Category string `db:"category"`
	Title    string `db:"title"`
	Borrowed bool   `db:"borrowed"`
}

func (p *PgItem) ToDomain() domain.Item {
	return domain.Item{
		ID:       domain.ItemID(p.ID),
		Category: domain.ItemCategory(p.Category),
		Title:    p.Title,
		Borrowed: p.Borrowed,
	}
}

// PgBorrowRecord is a current loan joined with its item and the creation time
// of the borrowing order.
type PgBorrowRecord struct {
	ID       int64     `db:"id"`
	Category string    `db:"category"`
	Title    string    `db:"title"`
	Start    time.Time `db:"start"`
}

func (p *PgBorrowRecord) ToDomain() domain.BorrowRecord {
	return domain.BorrowRecord{
		Item: domain.Item{
			ID:       domain.ItemID(p.ID),
			Category: domain.ItemCategory(p.Category),
			Title:    p.Title,
			Borrowed: true,
		},
		Start: p.Start,
	}
}

type PgCurrentLoan struct {
	ItemID  int64 `db:"item_id"`
	UserID  int64 `db:"user_id"`
	OrderID int64 `db:"order_id"`
}

type PgOrder struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

func (p *PgOrder) ToDomain(itemIDs []domain.ItemID) domain.Order {
	return domain.Order{
		ID:        domain.OrderID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Type:      domain.OrderType(p.Type),
		CreatedAt: p.CreatedAt,
		ItemIDs:   itemIDs,
	}
}

type PgOrderItem struct {
	OrderID int64 `db:"order_id"`
	ItemID  int64 `db:"item_id"`
}

type PgLateFee struct {
	ID     int64 `db:"id"      goqu:"skipinsert"`
	UserID int64 `db:"user_id"`
	ItemID int64 `db:"item_id"`
	Days   int   `db:"days"`
	Paid   bool  `db:"paid"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgLateFee) ToDomain() domain.LateFee {
	return domain.LateFee{
		ID:        domain.LateFeeID(p.ID),
		UserID:    domain.UserID(p.UserID),
		ItemID:    domain.ItemID(p.ItemID),
		Days:      p.Days,
		Paid:      p.Paid,
		CreatedAt: p.CreatedAt,
	}
}

func itemIDsToPg(ids []domain.ItemID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}

	return out
}

func pgItemsToDomain(rows []PgItem) []domain.Item {
	out := make([]domain.Item, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

func pgBorrowRecordsToDomain(rows []PgBorrowRecord) []domain.BorrowRecord {
	out := make([]domain.BorrowRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
